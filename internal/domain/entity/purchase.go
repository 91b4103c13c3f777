package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase cabecera de una compra de materias primas. Inmutable una vez creada.
// Total se deriva de las líneas (Σ cantidad × precio unitario).
type Purchase struct {
	ID            string
	InvoiceNumber string // único, lo aporta el proveedor
	Vendor        string
	OrderDate     time.Time
	Total         decimal.Decimal
	Memo          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []*PurchaseItem
}

// PurchaseItem línea de compra que referencia un Inventory.
type PurchaseItem struct {
	ID          string
	PurchaseID  string
	InventoryID string
	Quantity    int64
	Price       decimal.Decimal // precio unitario pactado con el proveedor
}
