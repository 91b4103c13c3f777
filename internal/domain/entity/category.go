package entity

import "time"

// ProductCategory categoría de productos (tabla de referencia, uno a muchos).
type ProductCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
