package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// SaleRepository ventas inmutables: solo creación y lectura.
type SaleRepository interface {
	// NextInvoiceNumber obtiene el siguiente consecutivo de la secuencia de la
	// DB. Monótono, sin colisiones entre ventas concurrentes.
	NextInvoiceNumber(ctx context.Context) (int64, error)
	// Create inserta la cabecera y sus líneas.
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
}
