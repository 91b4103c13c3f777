package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/punto-venta/internal/application/purchase"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// PurchaseItemRequest línea del body de crear compra.
type PurchaseItemRequest struct {
	InventoryID string          `json:"inventory_id" validate:"required,uuid"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
}

// CreatePurchaseRequest body para POST /api/purchases. OrderDate formato
// YYYY-MM-DD; vacío = hoy.
type CreatePurchaseRequest struct {
	InvoiceNumber string                `json:"invoice_number" validate:"required,min=1,max=100"`
	Vendor        string                `json:"vendor" validate:"required,min=1,max=200"`
	OrderDate     string                `json:"order_date,omitempty"`
	Memo          string                `json:"memo,omitempty" validate:"max=500"`
	Items         []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ID          string          `json:"id"`
	InventoryID string          `json:"inventory_id"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	Vendor        string                 `json:"vendor"`
	OrderDate     time.Time              `json:"order_date"`
	Total         decimal.Decimal        `json:"total"`
	Memo          string                 `json:"memo,omitempty"`
	Items         []PurchaseItemResponse `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
}

// ToPurchaseInput mapea el body a la entrada del caso de uso.
func (r CreatePurchaseRequest) ToPurchaseInput() (purchase.CreateInput, error) {
	orderDate := time.Now()
	if r.OrderDate != "" {
		parsed, err := time.Parse("2006-01-02", r.OrderDate)
		if err != nil {
			return purchase.CreateInput{}, err
		}
		orderDate = parsed
	}
	items := make([]purchase.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, purchase.LineItem{
			InventoryID: it.InventoryID,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return purchase.CreateInput{
		InvoiceNumber: r.InvoiceNumber,
		Vendor:        r.Vendor,
		OrderDate:     orderDate,
		Memo:          r.Memo,
		Items:         items,
	}, nil
}

// ToPurchaseResponse mapea la entidad al DTO.
func ToPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, PurchaseItemResponse{
			ID:          it.ID,
			InventoryID: it.InventoryID,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return PurchaseResponse{
		ID:            p.ID,
		InvoiceNumber: p.InvoiceNumber,
		Vendor:        p.Vendor,
		OrderDate:     p.OrderDate,
		Total:         p.Total,
		Memo:          p.Memo,
		Items:         items,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPurchaseResponses mapea la lista de compras.
func ToPurchaseResponses(list []*entity.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPurchaseResponse(p))
	}
	return out
}
