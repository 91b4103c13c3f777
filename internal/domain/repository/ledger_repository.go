package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// InventoryLogRepository ledger append-only de inventario. No hay Update/Delete.
type InventoryLogRepository interface {
	Append(ctx context.Context, log *entity.InventoryLog) error
	List(ctx context.Context) ([]*entity.InventoryLog, error)
}

// ProductLogRepository ledger append-only de productos.
type ProductLogRepository interface {
	Append(ctx context.Context, log *entity.ProductLog) error
	List(ctx context.Context) ([]*entity.ProductLog, error)
}
