package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre el ledger de ventas.
// Lee siempre datos commiteados (va directo al pool, sin transacción).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// BestSelling agrupa cantidad vendida por producto en [from, to).
// Desempate determinista: a igual cantidad, product id ascendente.
func (r *AnalyticsRepo) BestSelling(ctx context.Context, from, to time.Time, limit int) ([]repository.BestSellingResult, error) {
	const query = `
	SELECT p.id, p.name, SUM(i.quantity) AS total_qty
	FROM sales s
	JOIN sale_items i ON i.sale_id = s.id
	JOIN products  p ON p.id      = i.product_id
	WHERE s.created_at >= $1 AND s.created_at < $2
	GROUP BY p.id, p.name
	ORDER BY total_qty DESC, p.id ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.BestSelling: %w", err)
	}
	defer rows.Close()

	var results []repository.BestSellingResult
	for rows.Next() {
		var row repository.BestSellingResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantitySold); err != nil {
			return nil, fmt.Errorf("analytics.BestSelling scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesMetrics devuelve ingresos (Σ sales.total) y COGS del rango [from, to).
// COGS por línea = cantidad × capital actual del producto (suma de precios de
// sus materiales); los productos sin materiales cuentan como costo cero.
// COALESCE devuelve cero cuando el rango no tiene ventas.
func (r *AnalyticsRepo) SalesMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(total) FROM sales
	              WHERE created_at >= $1 AND created_at < $2), 0) AS revenue,
	    COALESCE(SUM(i.quantity * COALESCE(m.capital, 0)), 0)     AS cost
	FROM sales s
	JOIN sale_items i ON i.sale_id = s.id
	LEFT JOIN (
	    SELECT product_id, SUM(price) AS capital
	    FROM product_materials
	    GROUP BY product_id
	) m ON m.product_id = i.product_id
	WHERE s.created_at >= $1 AND s.created_at < $2`

	err = r.pool.QueryRow(ctx, query, from, to).Scan(&revenue, &cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.SalesMetrics: %w", err)
	}
	return revenue, cost, nil
}
