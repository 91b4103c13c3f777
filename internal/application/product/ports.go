package product

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de la composición del producto atados a esa tx.
type TxRunner interface {
	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		materialRepo repository.ProductMaterialRepository,
		prodLogRepo repository.ProductLogRepository,
	) error) error
}
