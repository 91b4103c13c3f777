package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo compras sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera y sus líneas en la misma transacción del caller.
// El número de factura tiene constraint UNIQUE: la colisión sale como ErrDuplicate.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchases (id, invoice_number, vendor, order_date, total, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.InvoiceNumber, p.Vendor, p.OrderDate, p.Total, nullIfEmpty(p.Memo),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, item := range p.Items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.PurchaseID = p.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_items (id, purchase_id, inventory_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.PurchaseID, item.InventoryID, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// List devuelve las compras con sus líneas, más reciente primero.
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_number, vendor, order_date, total, COALESCE(memo, ''), created_at, updated_at
		FROM purchases ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	byID := map[string]*entity.Purchase{}
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.InvoiceNumber, &p.Vendor, &p.OrderDate, &p.Total, &p.Memo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT i.id, i.purchase_id, i.inventory_id, i.quantity, i.price
		FROM purchase_items i
		JOIN purchases p ON p.id = i.purchase_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.PurchaseItem
		if err := itemRows.Scan(&it.ID, &it.PurchaseID, &it.InventoryID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		if p, ok := byID[it.PurchaseID]; ok {
			p.Items = append(p.Items, &it)
		}
	}
	return list, itemRows.Err()
}
