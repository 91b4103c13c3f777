package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Solo dentro de una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update actualiza name/price/category. No toca stock: el stock cambia
	// únicamente vía AdjustStock o ResetAllStock.
	Update(ctx context.Context, product *entity.Product) error
	// ResetAllStock pone el stock de todos los productos en cero y devuelve
	// cuántas filas cambió.
	ResetAllStock(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error

	StockAdjuster
}

// ProductMaterialRepository materiales que componen un producto.
type ProductMaterialRepository interface {
	Create(ctx context.Context, m *entity.ProductMaterial) error
	Update(ctx context.Context, m *entity.ProductMaterial) error
	Delete(ctx context.Context, id string) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductMaterial, error)
}
