package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

var _ repository.ProductMaterialRepository = (*ProductMaterialRepo)(nil)

// ProductMaterialRepo materiales de un producto sobre PostgreSQL (usable con pool o tx).
type ProductMaterialRepo struct {
	q Querier
}

// NewProductMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductMaterialRepository(q Querier) *ProductMaterialRepo {
	return &ProductMaterialRepo{q: q}
}

// Create persiste un material nuevo.
func (r *ProductMaterialRepo) Create(ctx context.Context, m *entity.ProductMaterial) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO product_materials (id, product_id, name, quantity, unit, price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.ProductID, m.Name, m.Quantity, m.Unit, m.Price)
	if err != nil {
		return fmt.Errorf("insert product material: %w", err)
	}
	return nil
}

// Update actualiza un material existente por ID.
func (r *ProductMaterialRepo) Update(ctx context.Context, m *entity.ProductMaterial) error {
	query := `
		UPDATE product_materials SET name = $2, quantity = $3, unit = $4, price = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Quantity, m.Unit, m.Price)
	if err != nil {
		return fmt.Errorf("update product material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un material por ID.
func (r *ProductMaterialRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product material: %w", err)
	}
	return nil
}

// ListByProduct lista los materiales de un producto.
func (r *ProductMaterialRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductMaterial, error) {
	query := `
		SELECT id, product_id, name, quantity, unit, price
		FROM product_materials WHERE product_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductMaterial
	for rows.Next() {
		var m entity.ProductMaterial
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Name, &m.Quantity, &m.Unit, &m.Price); err != nil {
			return nil, fmt.Errorf("scan product material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
