package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Inmutable; el número de factura lo asigna una
// secuencia de la base de datos (sin ventana de colisión entre ventas
// concurrentes).
type Sale struct {
	ID            string
	InvoiceNumber string
	Total         decimal.Decimal // Σ cantidad × precio del producto al momento de la venta
	CreatedAt     time.Time
	Items         []*SaleItem
}

// SaleItem línea de venta que referencia un Product.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string // denormalizado para listados y recibos
	Quantity    int64
}
