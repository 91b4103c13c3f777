package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// LineItem línea de compra en la entrada del caso de uso.
type LineItem struct {
	InventoryID string
	Quantity    int64
	Price       decimal.Decimal // precio unitario
}

// CreateInput entrada para crear una compra.
type CreateInput struct {
	InvoiceNumber string
	Vendor        string
	OrderDate     time.Time
	Memo          string
	Items         []LineItem
}

// UseCase crea compras: todos los incrementos de inventario, sus entradas del
// ledger y la cabecera con sus líneas commitean en una sola transacción. Si
// cualquier línea referencia un inventario inexistente, todo se revierte: nunca
// queda una compra parcial visible.
type UseCase struct {
	tx           TxRunner
	purchaseRepo repository.PurchaseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, purchaseRepo repository.PurchaseRepository) *UseCase {
	return &UseCase{tx: tx, purchaseRepo: purchaseRepo}
}

// Create ejecuta la compra.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.Purchase, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var result *entity.Purchase
	err := uc.tx.RunPurchase(ctx, func(
		invRepo repository.InventoryRepository,
		invLogRepo repository.InventoryLogRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		total := decimal.Zero
		items := make([]*entity.PurchaseItem, 0, len(in.Items))
		for _, item := range in.Items {
			inv, err := invRepo.GetByID(ctx, item.InventoryID)
			if err != nil {
				return err
			}
			if inv == nil {
				return domain.ErrNotFound
			}
			if _, err := invRepo.AdjustStock(ctx, item.InventoryID, item.Quantity); err != nil {
				return err
			}
			log := &entity.InventoryLog{
				Description: fmt.Sprintf("Inventory %s stock increase by %d from purchase %s", inv.Name, item.Quantity, in.InvoiceNumber),
				Memo:        in.Memo,
				Type:        entity.InventoryLogPURCHASE,
				CreatedAt:   now,
			}
			if err := invLogRepo.Append(ctx, log); err != nil {
				return err
			}
			total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
			items = append(items, &entity.PurchaseItem{
				InventoryID: item.InventoryID,
				Quantity:    item.Quantity,
				Price:       item.Price,
			})
		}

		p := &entity.Purchase{
			InvoiceNumber: in.InvoiceNumber,
			Vendor:        in.Vendor,
			OrderDate:     in.OrderDate,
			Total:         total,
			Memo:          in.Memo,
			CreatedAt:     now,
			UpdatedAt:     now,
			Items:         items,
		}
		if err := purchaseRepo.Create(ctx, p); err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List devuelve las compras con sus líneas, más reciente primero.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List(ctx)
}
