package entity

import "time"

// Inventory representa una materia prima con su stock disponible.
// El stock es un entero no negativo y solo se muta vía incrementos/decrementos
// atómicos en la capa de persistencia, nunca con read-modify-write en la app.
type Inventory struct {
	ID        string
	Name      string
	Stock     int64
	Unit      string // kg, g, l, pcs...
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tipos de entrada en el ledger de inventario.
const (
	InventoryLogINCREASE = "INCREASE"
	InventoryLogDECREASE = "DECREASE"
	InventoryLogUPDATE   = "UPDATE"
	InventoryLogPURCHASE = "PURCHASE"
)

// InventoryLog entrada inmutable del ledger de inventario. Se inserta
// exactamente una por ajuste que cambia el stock; nunca se actualiza ni borra.
type InventoryLog struct {
	ID          string
	Description string
	Memo        string // opcional
	Type        string // INCREASE, DECREASE, UPDATE, PURCHASE
	CreatedAt   time.Time
}
