package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BestSellingResult resultado crudo de la consulta de más vendidos.
// Lo produce la DB; el use case lo convierte en DTO.
type BestSellingResult struct {
	ProductID         string
	ProductName       string
	TotalQuantitySold int64
}

// AnalyticsRepository consultas de solo lectura sobre el ledger de ventas.
// Opera únicamente sobre datos ya commiteados; nunca muta estado.
type AnalyticsRepository interface {
	// BestSelling devuelve los `limit` productos con mayor cantidad vendida en
	// el rango [from, to). Orden: cantidad descendente y, a igualdad, product
	// id ascendente (desempate determinista).
	BestSelling(ctx context.Context, from, to time.Time, limit int) ([]BestSellingResult, error)

	// SalesMetrics devuelve ingresos (Σ sales.total) y COGS del rango [from, to).
	// COGS = Σ por línea vendida de (cantidad × capital actual del producto).
	// COALESCE a cero cuando no hay ventas.
	SalesMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error)
}
