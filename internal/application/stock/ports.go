package stock

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ajuste:
// el update condicional de stock y el append al ledger commitean juntos o
// ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
		invLogRepo repository.InventoryLogRepository,
		prodLogRepo repository.ProductLogRepository,
	) error) error
}
