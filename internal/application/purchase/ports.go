package purchase

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de la compra atados a esa tx.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		invLogRepo repository.InventoryLogRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
