package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/punto-venta/internal/application/analytics"
)

// AnalyticsRequest parámetros de los endpoints de analítica.
// Date formato YYYY-MM-DD; vacío = hoy (día calendario UTC).
type AnalyticsRequest struct {
	Date  string `query:"date"`
	Limit int    `query:"limit" validate:"min=0,max=100"`
}

// BestSellingResponse producto del ranking de más vendidos del día.
type BestSellingResponse struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	TotalQuantitySold int64  `json:"total_quantity_sold"`
}

// DailyFigureResponse agregado del día con variación contra el día anterior.
// Change es null cuando el valor de ayer fue cero (variación indefinida).
type DailyFigureResponse struct {
	Today     decimal.Decimal  `json:"today"`
	Yesterday decimal.Decimal  `json:"yesterday"`
	Change    *decimal.Decimal `json:"change"` // porcentaje, 2 decimales
}

// ToBestSellingResponses mapea el ranking.
func ToBestSellingResponses(list []analytics.BestSellingProduct) []BestSellingResponse {
	out := make([]BestSellingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, BestSellingResponse{
			ProductID:         b.ProductID,
			ProductName:       b.ProductName,
			TotalQuantitySold: b.TotalQuantitySold,
		})
	}
	return out
}

// ToDailyFigureResponse mapea el agregado del día.
func ToDailyFigureResponse(f *analytics.DailyFigure) DailyFigureResponse {
	return DailyFigureResponse{
		Today:     f.Today,
		Yesterday: f.Yesterday,
		Change:    f.Change,
	}
}
