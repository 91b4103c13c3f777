package sale

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de la venta atados a esa tx.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		prodLogRepo repository.ProductLogRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptGenerator genera el recibo PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, s SaleForReceipt) ([]byte, error)
}
