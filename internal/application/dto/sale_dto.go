package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/punto-venta/internal/application/sale"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// SaleItemRequest línea del body de crear venta.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	Total         decimal.Decimal    `json:"total"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ToSaleInput mapea el body a las líneas del caso de uso.
func (r CreateSaleRequest) ToSaleInput() []sale.LineItem {
	items := make([]sale.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, sale.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return items
}

// ToSaleResponse mapea la entidad al DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
		})
	}
	return SaleResponse{
		ID:            s.ID,
		InvoiceNumber: s.InvoiceNumber,
		Total:         s.Total,
		Items:         items,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleResponses mapea la lista de ventas.
func ToSaleResponses(list []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
