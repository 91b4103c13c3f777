package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado compuesto por materiales.
// Capital (costo unitario) se deriva de los materiales en cada lectura,
// nunca se persiste.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal // precio de venta
	Stock      int64
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductMaterial material que compone un producto. Pertenece a un único
// producto (cascade-delete al reemplazar o borrar el producto).
type ProductMaterial struct {
	ID        string
	ProductID string
	Name      string
	Quantity  int64
	Unit      string
	Price     decimal.Decimal
}

// Capital suma el precio de los materiales de un producto.
func Capital(materials []*ProductMaterial) decimal.Decimal {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.Price)
	}
	return total
}

// Tipos de entrada en el ledger de productos.
const (
	ProductLogINCREASE = "INCREASE"
	ProductLogDECREASE = "DECREASE"
	ProductLogUPDATE   = "UPDATE"
	ProductLogRESET    = "RESET"
)

// ProductLog entrada inmutable del ledger de productos (append-only).
type ProductLog struct {
	ID          string
	Description string
	Type        string // INCREASE, DECREASE, UPDATE, RESET
	CreatedAt   time.Time
}
