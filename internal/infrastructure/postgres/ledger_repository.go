package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)
var _ repository.ProductLogRepository = (*ProductLogRepo)(nil)

// InventoryLogRepo ledger append-only de inventario (usable con pool o tx).
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Append inserta una entrada del ledger. Las entradas nunca se modifican.
func (r *InventoryLogRepo) Append(ctx context.Context, log *entity.InventoryLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_logs (id, description, memo, type, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, log.ID, log.Description, nullIfEmpty(log.Memo), log.Type, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("append inventory log: %w", err)
	}
	return nil
}

// List devuelve el ledger completo, más reciente primero.
func (r *InventoryLogRepo) List(ctx context.Context) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, description, COALESCE(memo, ''), type, created_at
		FROM inventory_logs ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.Description, &l.Memo, &l.Type, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ProductLogRepo ledger append-only de productos (usable con pool o tx).
type ProductLogRepo struct {
	q Querier
}

// NewProductLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductLogRepository(q Querier) *ProductLogRepo {
	return &ProductLogRepo{q: q}
}

// Append inserta una entrada del ledger de productos.
func (r *ProductLogRepo) Append(ctx context.Context, log *entity.ProductLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO product_logs (id, description, type, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, log.ID, log.Description, log.Type, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("append product log: %w", err)
	}
	return nil
}

// List devuelve el ledger completo, más reciente primero.
func (r *ProductLogRepo) List(ctx context.Context) ([]*entity.ProductLog, error) {
	query := `
		SELECT id, description, type, created_at
		FROM product_logs ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductLog
	for rows.Next() {
		var l entity.ProductLog
		if err := rows.Scan(&l.ID, &l.Description, &l.Type, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
