package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// Acciones soportadas por el motor de ajuste.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// AdjustInput entrada para un ajuste manual de stock.
type AdjustInput struct {
	ID       string
	Quantity int64 // siempre positiva; la acción define el signo
	Action   string
	Memo     string // opcional, solo inventario
}

// Engine motor de ajuste de stock. Una misma mecánica para Inventory y Product:
// el delta firmado se aplica como UPDATE condicional atómico en la DB (la
// verificación de suficiencia ocurre sobre el valor actual de la fila, no sobre
// una lectura previa de la aplicación) y cada ajuste que cambia stock appendea
// exactamente una entrada al ledger, dentro de la misma transacción.
type Engine struct {
	tx TxRunner
}

// NewEngine construye el motor.
func NewEngine(tx TxRunner) *Engine {
	return &Engine{tx: tx}
}

// delta convierte acción+cantidad en delta firmado.
func delta(action string, quantity int64) (int64, error) {
	if quantity < 1 {
		return 0, domain.ErrInvalidInput
	}
	switch action {
	case ActionIncrease:
		return quantity, nil
	case ActionDecrease:
		return -quantity, nil
	default:
		return 0, domain.ErrInvalidAction
	}
}

// AdjustInventory aplica un ajuste manual sobre una materia prima y devuelve
// el inventario actualizado.
func (e *Engine) AdjustInventory(ctx context.Context, in AdjustInput) (*entity.Inventory, error) {
	d, err := delta(in.Action, in.Quantity)
	if err != nil {
		return nil, err
	}

	var result *entity.Inventory
	err = e.tx.Run(ctx, func(
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
		invLogRepo repository.InventoryLogRepository,
		_ repository.ProductLogRepository,
	) error {
		inv, err := invRepo.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		newStock, err := invRepo.AdjustStock(ctx, in.ID, d)
		if err != nil {
			return err
		}
		logType := entity.InventoryLogINCREASE
		verb := "increase"
		if in.Action == ActionDecrease {
			logType = entity.InventoryLogDECREASE
			verb = "decrease"
		}
		log := &entity.InventoryLog{
			Description: fmt.Sprintf("Inventory %s stock %s by %d", inv.Name, verb, in.Quantity),
			Memo:        in.Memo,
			Type:        logType,
			CreatedAt:   time.Now(),
		}
		if err := invLogRepo.Append(ctx, log); err != nil {
			return err
		}
		inv.Stock = newStock
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdjustProduct aplica un ajuste manual sobre un producto terminado y devuelve
// el producto actualizado.
func (e *Engine) AdjustProduct(ctx context.Context, in AdjustInput) (*entity.Product, error) {
	d, err := delta(in.Action, in.Quantity)
	if err != nil {
		return nil, err
	}

	var result *entity.Product
	err = e.tx.Run(ctx, func(
		_ repository.InventoryRepository,
		productRepo repository.ProductRepository,
		_ repository.InventoryLogRepository,
		prodLogRepo repository.ProductLogRepository,
	) error {
		product, err := productRepo.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newStock, err := productRepo.AdjustStock(ctx, in.ID, d)
		if err != nil {
			return err
		}
		logType := entity.ProductLogINCREASE
		verb := "increase"
		if in.Action == ActionDecrease {
			logType = entity.ProductLogDECREASE
			verb = "decrease"
		}
		log := &entity.ProductLog{
			Description: fmt.Sprintf("Product %s stock %s by %d", product.Name, verb, in.Quantity),
			Type:        logType,
			CreatedAt:   time.Now(),
		}
		if err := prodLogRepo.Append(ctx, log); err != nil {
			return err
		}
		product.Stock = newStock
		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ResetProducts pone todo el stock de productos en cero y deja una entrada
// RESET en el ledger (una sola, describiendo el alcance).
func (e *Engine) ResetProducts(ctx context.Context) error {
	return e.tx.Run(ctx, func(
		_ repository.InventoryRepository,
		productRepo repository.ProductRepository,
		_ repository.InventoryLogRepository,
		prodLogRepo repository.ProductLogRepository,
	) error {
		affected, err := productRepo.ResetAllStock(ctx)
		if err != nil {
			return err
		}
		log := &entity.ProductLog{
			Description: fmt.Sprintf("All products stock reset to 0 (%d products)", affected),
			Type:        entity.ProductLogRESET,
			CreatedAt:   time.Now(),
		}
		return prodLogRepo.Append(ctx, log)
	})
}
