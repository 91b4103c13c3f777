package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-venta/internal/application/analytics"
	"github.com/jhoicas/punto-venta/internal/application/dto"
	"github.com/jhoicas/punto-venta/internal/application/product"
	"github.com/jhoicas/punto-venta/internal/application/stock"
)

// ProductHandler CRUD de productos, ajuste de stock, ranking y ledger (protegido).
type ProductHandler struct {
	uc        *product.UseCase
	engine    *stock.Engine
	analytics *analytics.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *product.UseCase, engine *stock.Engine, analyticsUC *analytics.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, engine: engine, analytics: analyticsUC}
}

// List godoc
// @Summary      Listar productos con categoría, materiales y capital
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductResponses(list))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductResponse(d))
}

// Create godoc
// @Summary      Crear producto con sus materiales
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto y materiales"
// @Success      201   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	d, err := h.uc.Create(c.Context(), product.CreateInput{
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		Materials:  dto.ToMaterialInputs(in.Materials),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(d))
}

// Update godoc
// @Summary      Actualizar producto y reconciliar materiales
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	d, err := h.uc.Update(c.Context(), c.Params("id"), product.UpdateInput{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
		Materials:  dto.ToMaterialInputs(in.Materials),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductResponse(d))
}

// Delete godoc
// @Summary      Eliminar producto (los materiales caen en cascada)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// ManageStock godoc
// @Summary      Ajustar stock de producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManageStockRequest  true  "Ajuste (increase|decrease)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/manage [post]
func (h *ProductHandler) ManageStock(c *fiber.Ctx) error {
	var in dto.ManageStockRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	p, err := h.engine.AdjustProduct(c.Context(), stock.AdjustInput{
		ID:       in.ID,
		Quantity: in.Quantity,
		Action:   in.Action,
		Memo:     in.Memo,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	d, err := h.uc.GetByID(c.Context(), p.ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductResponse(d))
}

// ResetStock godoc
// @Summary      Poner el stock de todos los productos en cero
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/products/reset [post]
func (h *ProductHandler) ResetStock(c *fiber.Ctx) error {
	if err := h.engine.ResetProducts(c.Context()); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock de productos reiniciado"})
}

// BestSelling godoc
// @Summary      Productos más vendidos del día
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        date   query  string  false  "YYYY-MM-DD (default hoy, UTC)"
// @Param        limit  query  int     false  "Máx resultados"  default(5)
// @Success      200  {array}  dto.BestSellingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/best-selling [get]
func (h *ProductHandler) BestSelling(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c)
	if !ok {
		return nil
	}
	list, err := h.analytics.BestSelling(c.Context(), date, c.QueryInt("limit", 0))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToBestSellingResponses(list))
}

// Logs godoc
// @Summary      Ledger de productos (más reciente primero)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LogResponse
// @Router       /api/products/logs [get]
func (h *ProductHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.uc.Logs(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductLogResponses(logs))
}

// parseDateQuery lee ?date=YYYY-MM-DD. Fecha inválida responde 400 y devuelve
// ok=false; ausente devuelve el cero de time.Time (el caso de uso usa hoy).
func parseDateQuery(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "formato de fecha: YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
