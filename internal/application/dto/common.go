package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Page    int    `query:"page" validate:"min=0"`
	PerPage int    `query:"per_page" validate:"min=0,max=100"`
	Name    string `query:"name"` // filtro contains, case-insensitive
}

// DefaultPage aplica valores por defecto si Page/PerPage son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = 10
	}
}

// Offset convierte page/perPage a offset SQL.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageMeta metadatos de página en respuestas de listado.
type PageMeta struct {
	Page    int   `json:"page"`
	Total   int64 `json:"total"`
	PerPage int   `json:"per_page"`
	HasNext bool  `json:"has_next"`
}

// NewPageMeta arma la metadata a partir del total sin paginar.
func NewPageMeta(page, perPage int, total int64) PageMeta {
	return PageMeta{
		Page:    page,
		Total:   total,
		PerPage: perPage,
		HasNext: int64(page*perPage) < total,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
