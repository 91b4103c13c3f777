package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-venta/internal/application/analytics"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake: repositorio de analítica con métricas por día UTC
// ──────────────────────────────────────────────────────────────────────────────

type dayMetrics struct {
	revenue decimal.Decimal
	cost    decimal.Decimal
}

type memAnalyticsRepo struct {
	// métricas indexadas por fecha "2006-01-02" (día calendario UTC)
	metrics map[string]dayMetrics
	best    map[string][]repository.BestSellingResult

	lastLimit int
}

func (r *memAnalyticsRepo) BestSelling(_ context.Context, from, _ time.Time, limit int) ([]repository.BestSellingResult, error) {
	r.lastLimit = limit
	rows := r.best[from.Format("2006-01-02")]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memAnalyticsRepo) SalesMetrics(_ context.Context, from, _ time.Time) (decimal.Decimal, decimal.Decimal, error) {
	m, ok := r.metrics[from.Format("2006-01-02")]
	if !ok {
		return decimal.Zero, decimal.Zero, nil
	}
	return m.revenue, m.cost, nil
}

var fixedDate = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SalesTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesTotal_VariacionContraAyer(t *testing.T) {
	repo := &memAnalyticsRepo{metrics: map[string]dayMetrics{
		"2024-03-15": {revenue: decimal.NewFromInt(150)},
		"2024-03-14": {revenue: decimal.NewFromInt(100)},
	}}

	fig, err := analytics.NewUseCase(repo).SalesTotal(context.Background(), fixedDate)
	require.NoError(t, err)

	assert.True(t, fig.Today.Equal(decimal.NewFromInt(150)))
	assert.True(t, fig.Yesterday.Equal(decimal.NewFromInt(100)))
	// (150 - 100) / 100 × 100 = 50%
	require.NotNil(t, fig.Change)
	assert.True(t, fig.Change.Equal(decimal.NewFromInt(50)), "change esperado 50, fue %s", fig.Change)
}

func TestSalesTotal_AyerCeroDejaChangeNil(t *testing.T) {
	repo := &memAnalyticsRepo{metrics: map[string]dayMetrics{
		"2024-03-15": {revenue: decimal.NewFromInt(150)},
	}}

	fig, err := analytics.NewUseCase(repo).SalesTotal(context.Background(), fixedDate)
	require.NoError(t, err)

	assert.True(t, fig.Today.Equal(decimal.NewFromInt(150)))
	assert.True(t, fig.Yesterday.IsZero())
	assert.Nil(t, fig.Change, "la variación contra un día sin ventas es indefinida")
}

func TestSalesTotal_RedondeaADosDecimales(t *testing.T) {
	// (100 - 30) / 30 × 100 = 233.333... → 233.33
	repo := &memAnalyticsRepo{metrics: map[string]dayMetrics{
		"2024-03-15": {revenue: decimal.NewFromInt(100)},
		"2024-03-14": {revenue: decimal.NewFromInt(30)},
	}}

	fig, err := analytics.NewUseCase(repo).SalesTotal(context.Background(), fixedDate)
	require.NoError(t, err)

	require.NotNil(t, fig.Change)
	assert.Equal(t, "233.33", fig.Change.String())
}

func TestSalesTotal_CaidaDaPorcentajeNegativo(t *testing.T) {
	repo := &memAnalyticsRepo{metrics: map[string]dayMetrics{
		"2024-03-15": {revenue: decimal.NewFromInt(50)},
		"2024-03-14": {revenue: decimal.NewFromInt(200)},
	}}

	fig, err := analytics.NewUseCase(repo).SalesTotal(context.Background(), fixedDate)
	require.NoError(t, err)

	require.NotNil(t, fig.Change)
	assert.Equal(t, "-75", fig.Change.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SalesProfit
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesProfit_IngresosMenosCosto(t *testing.T) {
	repo := &memAnalyticsRepo{metrics: map[string]dayMetrics{
		"2024-03-15": {revenue: decimal.NewFromInt(100), cost: decimal.NewFromInt(40)},
		"2024-03-14": {revenue: decimal.NewFromInt(80), cost: decimal.NewFromInt(50)},
	}}

	fig, err := analytics.NewUseCase(repo).SalesProfit(context.Background(), fixedDate)
	require.NoError(t, err)

	// hoy: 100 − 40 = 60; ayer: 80 − 50 = 30; variación: 100%
	assert.True(t, fig.Today.Equal(decimal.NewFromInt(60)))
	assert.True(t, fig.Yesterday.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, fig.Change)
	assert.True(t, fig.Change.Equal(decimal.NewFromInt(100)))
}

func TestSalesProfit_DiaSinVentas(t *testing.T) {
	repo := &memAnalyticsRepo{metrics: map[string]dayMetrics{}}

	fig, err := analytics.NewUseCase(repo).SalesProfit(context.Background(), fixedDate)
	require.NoError(t, err)

	assert.True(t, fig.Today.IsZero())
	assert.True(t, fig.Yesterday.IsZero())
	assert.Nil(t, fig.Change)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BestSelling
// ──────────────────────────────────────────────────────────────────────────────

func TestBestSelling_OrdenYLimite(t *testing.T) {
	repo := &memAnalyticsRepo{best: map[string][]repository.BestSellingResult{
		"2024-03-15": {
			{ProductID: "p1", ProductName: "Pan", TotalQuantitySold: 20},
			{ProductID: "p2", ProductName: "Torta", TotalQuantitySold: 7},
		},
	}}

	rows, err := analytics.NewUseCase(repo).BestSelling(context.Background(), fixedDate, 10)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Pan", rows[0].ProductName)
	assert.Equal(t, int64(20), rows[0].TotalQuantitySold)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestBestSelling_LimiteInvalidoUsaElDefault(t *testing.T) {
	repo := &memAnalyticsRepo{best: map[string][]repository.BestSellingResult{}}

	_, err := analytics.NewUseCase(repo).BestSelling(context.Background(), fixedDate, 0)
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultBestSellingLimit, repo.lastLimit)

	_, err = analytics.NewUseCase(repo).BestSelling(context.Background(), fixedDate, -3)
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultBestSellingLimit, repo.lastLimit)
}

func TestBestSelling_DiaSinVentasListaVacia(t *testing.T) {
	repo := &memAnalyticsRepo{best: map[string][]repository.BestSellingResult{}}

	rows, err := analytics.NewUseCase(repo).BestSelling(context.Background(), fixedDate, 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
