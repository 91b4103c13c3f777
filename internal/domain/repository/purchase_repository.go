package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// PurchaseRepository compras inmutables: solo creación y lectura.
type PurchaseRepository interface {
	// Create inserta la cabecera y sus líneas. Devuelve ErrDuplicate si el
	// número de factura ya existe.
	Create(ctx context.Context, p *entity.Purchase) error
	List(ctx context.Context) ([]*entity.Purchase, error)
}
