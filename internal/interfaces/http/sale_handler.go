package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-venta/internal/application/analytics"
	"github.com/jhoicas/punto-venta/internal/application/dto"
	"github.com/jhoicas/punto-venta/internal/application/sale"
)

// SaleHandler registro de ventas, métricas del día y recibo PDF (protegido).
type SaleHandler struct {
	uc        *sale.UseCase
	analytics *analytics.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sale.UseCase, analyticsUC *analytics.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc, analytics: analyticsUC}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	s, err := h.uc.Create(c.Context(), in.ToSaleInput())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleResponse(s))
}

// List godoc
// @Summary      Listar ventas (más reciente primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToSaleResponses(list))
}

// Total godoc
// @Summary      Ingresos del día con variación contra el día anterior
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (default hoy, UTC)"
// @Success      200  {object}  dto.DailyFigureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/total [get]
func (h *SaleHandler) Total(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return nil
	}
	fig, err := h.analytics.SalesTotal(c.Context(), date)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToDailyFigureResponse(fig))
}

// Profit godoc
// @Summary      Utilidad del día con variación contra el día anterior
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (default hoy, UTC)"
// @Success      200  {object}  dto.DailyFigureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/profit [get]
func (h *SaleHandler) Profit(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return nil
	}
	fig, err := h.analytics.SalesProfit(c.Context(), date)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToDailyFigureResponse(fig))
}

// Receipt godoc
// @Summary      Recibo de la venta en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="receipt.pdf"`)
	return c.Send(pdf)
}
