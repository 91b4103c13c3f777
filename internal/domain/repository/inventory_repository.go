package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// InventoryFilter filtros de listado de inventarios.
type InventoryFilter struct {
	Name   string // contains, case-insensitive
	Limit  int
	Offset int
}

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// AdjustStock es la única vía para mutar stock: un UPDATE condicional atómico
// en la DB, nunca read-modify-write en la aplicación.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Solo dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Inventory, error)
	List(ctx context.Context, f InventoryFilter) ([]*entity.Inventory, error)
	Count(ctx context.Context, f InventoryFilter) (int64, error)
	ListAll(ctx context.Context) ([]*entity.Inventory, error)
	// Update actualiza name y unit. No toca stock: el stock cambia únicamente
	// vía AdjustStock.
	Update(ctx context.Context, inv *entity.Inventory) error
	Delete(ctx context.Context, id string) error

	StockAdjuster
}

// StockAdjuster capacidad compartida de ajuste de stock. La implementan los
// repositorios de Inventory y Product: aplica el delta con un UPDATE condicional
// (stock = stock + delta ... AND stock + delta >= 0) y devuelve el stock nuevo.
// Devuelve ErrNotFound si la fila no existe y ErrInsufficientStock si el delta
// dejaría el stock negativo.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, id string, delta int64) (int64, error)
}
