package dto

import (
	"time"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// CreateInventoryRequest body para POST /api/inventories.
type CreateInventoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Unit string `json:"unit" validate:"max=20"`
}

// UpdateInventoryRequest body para PUT /api/inventories/:id. Stock es el valor
// absoluto objetivo; la diferencia contra el actual queda en el ledger.
type UpdateInventoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Stock int64  `json:"stock" validate:"min=0"`
	Unit  string `json:"unit" validate:"max=20"`
}

// ManageStockRequest body para POST /api/inventories/manage y
// POST /api/products/manage.
type ManageStockRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Action   string `json:"action" validate:"required,oneof=increase decrease"`
	Memo     string `json:"memo,omitempty" validate:"max=500"`
}

// InventoryResponse materia prima en respuestas.
type InventoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int64     `json:"stock"`
	Unit      string    `json:"unit,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryListResponse listado paginado de inventarios.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Meta  PageMeta            `json:"meta"`
}

// LogResponse entrada del ledger (inventario o producto) en respuestas.
type LogResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Memo        string    `json:"memo,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToInventoryResponse mapea la entidad al DTO.
func ToInventoryResponse(inv *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:        inv.ID,
		Name:      inv.Name,
		Stock:     inv.Stock,
		Unit:      inv.Unit,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

// ToInventoryResponses mapea la lista de entidades.
func ToInventoryResponses(list []*entity.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInventoryResponse(inv))
	}
	return out
}

// ToInventoryLogResponses mapea el ledger de inventario.
func ToInventoryLogResponses(logs []*entity.InventoryLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, LogResponse{
			ID:          l.ID,
			Description: l.Description,
			Memo:        l.Memo,
			Type:        l.Type,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}

// ToProductLogResponses mapea el ledger de productos.
func ToProductLogResponses(logs []*entity.ProductLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, LogResponse{
			ID:          l.ID,
			Description: l.Description,
			Type:        l.Type,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}
