package product

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// MaterialInput material en la entrada de crear/actualizar producto.
// MaterialID vacío = insertar; con valor = actualizar ese material.
type MaterialInput struct {
	MaterialID string
	Name       string
	Quantity   int64
	Unit       string
	Price      decimal.Decimal
}

// CreateInput entrada para crear un producto.
type CreateInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID string
	Materials  []MaterialInput
}

// UpdateInput entrada para actualizar un producto y su lista de materiales.
type UpdateInput struct {
	Name       string
	Price      decimal.Decimal
	Stock      int64 // stock absoluto objetivo; se aplica como delta bajo lock
	CategoryID string
	Materials  []MaterialInput
}

// Detail producto con su categoría, materiales y capital derivado.
// Capital = Σ precio de los materiales; se recalcula en cada lectura,
// nunca se persiste.
type Detail struct {
	Product   *entity.Product
	Category  *entity.ProductCategory
	Materials []*entity.ProductMaterial
	Capital   decimal.Decimal
}

// UseCase gestor de composición de productos: reconcilia la lista de materiales
// en la actualización (altas/cambios/bajas) dentro de una transacción y deriva
// el capital de los materiales vigentes.
type UseCase struct {
	tx           TxRunner
	productRepo  repository.ProductRepository
	materialRepo repository.ProductMaterialRepository
	categoryRepo repository.CategoryRepository
	prodLogRepo  repository.ProductLogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	tx TxRunner,
	productRepo repository.ProductRepository,
	materialRepo repository.ProductMaterialRepository,
	categoryRepo repository.CategoryRepository,
	prodLogRepo repository.ProductLogRepository,
) *UseCase {
	return &UseCase{
		tx:           tx,
		productRepo:  productRepo,
		materialRepo: materialRepo,
		categoryRepo: categoryRepo,
		prodLogRepo:  prodLogRepo,
	}
}

// Create crea un producto con sus materiales. Stock inicia en 0.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*Detail, error) {
	if len(in.Materials) == 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      0,
		CategoryID: in.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	var materials []*entity.ProductMaterial
	err = uc.tx.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		materialRepo repository.ProductMaterialRepository,
		_ repository.ProductLogRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		for _, m := range in.Materials {
			mat := &entity.ProductMaterial{
				ProductID: product.ID,
				Name:      m.Name,
				Quantity:  m.Quantity,
				Unit:      m.Unit,
				Price:     m.Price,
			}
			if err := materialRepo.Create(ctx, mat); err != nil {
				return err
			}
			materials = append(materials, mat)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Detail{
		Product:   product,
		Category:  category,
		Materials: materials,
		Capital:   entity.Capital(materials),
	}, nil
}

// Update actualiza los campos del producto y reconcilia su lista de materiales
// en una sola transacción. La entrada se particiona en: materiales sin id (a
// insertar), con id (a actualizar) y existentes cuyo id no viene en la entrada
// (a borrar). El stock objetivo se aplica como delta contra el valor leído con
// FOR UPDATE dentro de la misma tx, por el update condicional del motor de
// ajuste; si difiere del anterior queda una entrada UPDATE en el ledger.
func (uc *UseCase) Update(ctx context.Context, id string, in UpdateInput) (*Detail, error) {
	if len(in.Materials) == 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	var (
		product   *entity.Product
		materials []*entity.ProductMaterial
	)
	err = uc.tx.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		materialRepo repository.ProductMaterialRepository,
		prodLogRepo repository.ProductLogRepository,
	) error {
		var err error
		product, err = productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		oldStock := product.Stock

		existing, err := materialRepo.ListByProduct(ctx, id)
		if err != nil {
			return err
		}

		// Partición de materiales: insertar / actualizar / borrar.
		incoming := map[string]bool{}
		for _, m := range in.Materials {
			if m.MaterialID != "" {
				incoming[m.MaterialID] = true
			}
		}
		for _, old := range existing {
			if !incoming[old.ID] {
				if err := materialRepo.Delete(ctx, old.ID); err != nil {
					return err
				}
			}
		}
		for _, m := range in.Materials {
			mat := &entity.ProductMaterial{
				ID:        m.MaterialID,
				ProductID: id,
				Name:      m.Name,
				Quantity:  m.Quantity,
				Unit:      m.Unit,
				Price:     m.Price,
			}
			if m.MaterialID == "" {
				if err := materialRepo.Create(ctx, mat); err != nil {
					return err
				}
			} else {
				if err := materialRepo.Update(ctx, mat); err != nil {
					return err
				}
			}
		}

		product.Name = in.Name
		product.Price = in.Price
		product.CategoryID = in.CategoryID
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}

		if delta := in.Stock - oldStock; delta != 0 {
			newStock, err := productRepo.AdjustStock(ctx, id, delta)
			if err != nil {
				return err
			}
			product.Stock = newStock
			log := &entity.ProductLog{
				Description: fmt.Sprintf("Product %s stock update from %d to %d", product.Name, oldStock, newStock),
				Type:        entity.ProductLogUPDATE,
				CreatedAt:   time.Now(),
			}
			if err := prodLogRepo.Append(ctx, log); err != nil {
				return err
			}
		}

		materials, err = materialRepo.ListByProduct(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Detail{
		Product:   product,
		Category:  category,
		Materials: materials,
		Capital:   entity.Capital(materials),
	}, nil
}

// GetByID devuelve un producto con materiales, categoría y capital derivado.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*Detail, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toDetail(ctx, product)
}

// List devuelve todos los productos con su capital derivado.
func (uc *UseCase) List(ctx context.Context) ([]*Detail, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]*Detail, 0, len(products))
	for _, p := range products {
		d, err := uc.toDetail(ctx, p)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// Delete elimina un producto (verifica existencia primero; los materiales caen
// por cascade).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

// Logs devuelve el ledger de productos, más reciente primero.
func (uc *UseCase) Logs(ctx context.Context) ([]*entity.ProductLog, error) {
	return uc.prodLogRepo.List(ctx)
}

func (uc *UseCase) toDetail(ctx context.Context, p *entity.Product) (*Detail, error) {
	materials, err := uc.materialRepo.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	category, err := uc.categoryRepo.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Product:   p,
		Category:  category,
		Materials: materials,
		Capital:   entity.Capital(materials),
	}, nil
}
