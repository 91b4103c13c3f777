package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/punto-venta/internal/application/stock"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// CreateInventoryInput datos para crear una materia prima. El stock inicia en
// cero; solo crece vía el motor de ajuste o compras.
type CreateInventoryInput struct {
	Name string
	Unit string
}

// UpdateInventoryInput PATCH de una materia prima. Stock es el valor absoluto
// objetivo; se aplica como delta bajo lock dentro de la misma tx que el log.
type UpdateInventoryInput struct {
	Name  string
	Stock int64
	Unit  string
}

// InventoryUseCase CRUD de inventarios más listado de su ledger.
type InventoryUseCase struct {
	repo    repository.InventoryRepository
	logRepo repository.InventoryLogRepository
	tx      stock.TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, logRepo repository.InventoryLogRepository, tx stock.TxRunner) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, logRepo: logRepo, tx: tx}
}

// Create crea un inventario con stock cero.
func (uc *InventoryUseCase) Create(ctx context.Context, in CreateInventoryInput) (*entity.Inventory, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Stock:     0,
		Unit:      in.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetByID obtiene un inventario. ErrNotFound si no existe.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// List lista inventarios con filtro por nombre y paginación. Devuelve también
// el total sin paginar para que la capa HTTP arme la metadata de páginas.
func (uc *InventoryUseCase) List(ctx context.Context, name string, limit, offset int) ([]*entity.Inventory, int64, error) {
	f := repository.InventoryFilter{Name: name, Limit: limit, Offset: offset}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAll lista todos los inventarios sin paginación (selectores de UI).
func (uc *InventoryUseCase) ListAll(ctx context.Context) ([]*entity.Inventory, error) {
	return uc.repo.ListAll(ctx)
}

// Update actualiza name/unit y, si el stock objetivo difiere del actual, aplica
// la diferencia como delta bajo FOR UPDATE y deja exactamente una entrada
// UPDATE en el ledger. Todo en una sola tx: o cambia stock y queda el log, o
// nada.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in UpdateInventoryInput) (*entity.Inventory, error) {
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.tx.Run(ctx, func(
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
		invLogRepo repository.InventoryLogRepository,
		_ repository.ProductLogRepository,
	) error {
		inv, err := invRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		inv.Name = in.Name
		inv.Unit = in.Unit
		if err := invRepo.Update(ctx, inv); err != nil {
			return err
		}
		if delta := in.Stock - inv.Stock; delta != 0 {
			newStock, err := invRepo.AdjustStock(ctx, id, delta)
			if err != nil {
				return err
			}
			log := &entity.InventoryLog{
				ID:          uuid.New().String(),
				Description: fmt.Sprintf("Inventory %s stock update from %d to %d", inv.Name, inv.Stock, newStock),
				Type:        entity.InventoryLogUPDATE,
				CreatedAt:   time.Now(),
			}
			if err := invLogRepo.Append(ctx, log); err != nil {
				return err
			}
			inv.Stock = newStock
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina un inventario. ErrNotFound si no existe.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Logs lista el ledger de inventario, más reciente primero.
func (uc *InventoryUseCase) Logs(ctx context.Context) ([]*entity.InventoryLog, error) {
	return uc.logRepo.List(ctx)
}
