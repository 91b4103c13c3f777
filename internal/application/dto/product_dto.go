package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/punto-venta/internal/application/product"
)

// MaterialRequest material dentro del body de crear/actualizar producto.
// MaterialID vacío = material nuevo; con valor = actualizar ese material.
// Los materiales existentes ausentes del body se eliminan.
type MaterialRequest struct {
	MaterialID string          `json:"material_id,omitempty" validate:"omitempty,uuid"`
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Quantity   int64           `json:"quantity" validate:"required,min=1"`
	Unit       string          `json:"unit" validate:"max=20"`
	Price      decimal.Decimal `json:"price"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal   `json:"price" validate:"required"`
	CategoryID string            `json:"category_id" validate:"required,uuid"`
	Materials  []MaterialRequest `json:"materials" validate:"required,min=1,dive"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=200"`
	Price      decimal.Decimal   `json:"price" validate:"required"`
	Stock      int64             `json:"stock" validate:"min=0"`
	CategoryID string            `json:"category_id" validate:"required,uuid"`
	Materials  []MaterialRequest `json:"materials" validate:"required,min=1,dive"`
}

// MaterialResponse material en respuestas.
type MaterialResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

// ProductResponse producto con categoría, materiales y capital derivado.
type ProductResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Price     decimal.Decimal    `json:"price"`
	Stock     int64              `json:"stock"`
	Capital   decimal.Decimal    `json:"capital"`
	Category  *CategoryResponse  `json:"category,omitempty"`
	Materials []MaterialResponse `json:"materials"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToMaterialInputs mapea los materiales del body a la entrada del caso de uso.
func ToMaterialInputs(reqs []MaterialRequest) []product.MaterialInput {
	out := make([]product.MaterialInput, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, product.MaterialInput{
			MaterialID: r.MaterialID,
			Name:       r.Name,
			Quantity:   r.Quantity,
			Unit:       r.Unit,
			Price:      r.Price,
		})
	}
	return out
}

// ToProductResponse mapea el detalle del caso de uso al DTO.
func ToProductResponse(d *product.Detail) ProductResponse {
	materials := make([]MaterialResponse, 0, len(d.Materials))
	for _, m := range d.Materials {
		materials = append(materials, MaterialResponse{
			ID:       m.ID,
			Name:     m.Name,
			Quantity: m.Quantity,
			Unit:     m.Unit,
			Price:    m.Price,
		})
	}
	resp := ProductResponse{
		ID:        d.Product.ID,
		Name:      d.Product.Name,
		Price:     d.Product.Price,
		Stock:     d.Product.Stock,
		Capital:   d.Capital,
		Materials: materials,
		CreatedAt: d.Product.CreatedAt,
		UpdatedAt: d.Product.UpdatedAt,
	}
	if d.Category != nil {
		c := ToCategoryResponse(d.Category)
		resp.Category = &c
	}
	return resp
}

// ToProductResponses mapea la lista de detalles.
func ToProductResponses(list []*product.Detail) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToProductResponse(d))
	}
	return out
}
