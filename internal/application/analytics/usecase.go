package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// DefaultBestSellingLimit tope por defecto de productos más vendidos.
const DefaultBestSellingLimit = 5

// BestSellingProduct producto con su cantidad vendida en el día.
type BestSellingProduct struct {
	ProductID         string
	ProductName       string
	TotalQuantitySold int64
}

// DailyFigure agregado de un día con su variación contra el día anterior.
// Change es nil cuando el total de ayer fue cero (variación indefinida: la
// división por cero no se propaga como NaN, se documenta como null).
type DailyFigure struct {
	Today     decimal.Decimal
	Yesterday decimal.Decimal
	Change    *decimal.Decimal // porcentaje, 2 decimales
}

// UseCase agregador de analítica: solo lecturas sobre datos commiteados del
// ledger de ventas; nunca muta estado.
type UseCase struct {
	repo repository.AnalyticsRepository
}

// NewUseCase construye el agregador.
func NewUseCase(repo repository.AnalyticsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// dayWindow devuelve [inicio, fin) del día calendario UTC de t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}

// percentChange calcula (today - yesterday) / yesterday × 100 con 2 decimales.
// Devuelve nil cuando yesterday es cero.
func percentChange(today, yesterday decimal.Decimal) *decimal.Decimal {
	if yesterday.IsZero() {
		return nil
	}
	change := today.Sub(yesterday).Div(yesterday).Mul(decimal.NewFromInt(100)).Round(2)
	return &change
}

// BestSelling devuelve los productos más vendidos del día calendario UTC de
// `date` (hora actual si es cero), cantidad descendente. Día sin ventas
// devuelve la lista vacía.
func (uc *UseCase) BestSelling(ctx context.Context, date time.Time, limit int) ([]BestSellingProduct, error) {
	if date.IsZero() {
		date = time.Now()
	}
	if limit <= 0 {
		limit = DefaultBestSellingLimit
	}
	from, to := dayWindow(date)
	rows, err := uc.repo.BestSelling(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	result := make([]BestSellingProduct, 0, len(rows))
	for _, r := range rows {
		result = append(result, BestSellingProduct{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			TotalQuantitySold: r.TotalQuantitySold,
		})
	}
	return result, nil
}

// SalesTotal devuelve los ingresos del día y la variación contra el día anterior.
func (uc *UseCase) SalesTotal(ctx context.Context, date time.Time) (*DailyFigure, error) {
	if date.IsZero() {
		date = time.Now()
	}
	from, to := dayWindow(date)
	todayRevenue, _, err := uc.repo.SalesMetrics(ctx, from, to)
	if err != nil {
		return nil, err
	}
	yesterdayRevenue, _, err := uc.repo.SalesMetrics(ctx, from.Add(-24*time.Hour), from)
	if err != nil {
		return nil, err
	}
	return &DailyFigure{
		Today:     todayRevenue,
		Yesterday: yesterdayRevenue,
		Change:    percentChange(todayRevenue, yesterdayRevenue),
	}, nil
}

// SalesProfit devuelve la utilidad del día (ingresos − COGS, con COGS = Σ por
// línea vendida de cantidad × capital actual del producto) y la variación
// contra el día anterior.
func (uc *UseCase) SalesProfit(ctx context.Context, date time.Time) (*DailyFigure, error) {
	if date.IsZero() {
		date = time.Now()
	}
	from, to := dayWindow(date)
	todayRevenue, todayCost, err := uc.repo.SalesMetrics(ctx, from, to)
	if err != nil {
		return nil, err
	}
	yesterdayRevenue, yesterdayCost, err := uc.repo.SalesMetrics(ctx, from.Add(-24*time.Hour), from)
	if err != nil {
		return nil, err
	}
	todayProfit := todayRevenue.Sub(todayCost)
	yesterdayProfit := yesterdayRevenue.Sub(yesterdayCost)
	return &DailyFigure{
		Today:     todayProfit,
		Yesterday: yesterdayProfit,
		Change:    percentChange(todayProfit, yesterdayProfit),
	}, nil
}
