package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para ProductCategory.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.ProductCategory) error
	GetByID(ctx context.Context, id string) (*entity.ProductCategory, error)
	List(ctx context.Context) ([]*entity.ProductCategory, error)
	Update(ctx context.Context, c *entity.ProductCategory) error
	Delete(ctx context.Context, id string) error
}
