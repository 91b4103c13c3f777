package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/punto-venta/internal/application/dto"
	"github.com/jhoicas/punto-venta/internal/application/stock"
	"github.com/jhoicas/punto-venta/internal/application/usecase"
)

// InventoryHandler CRUD de inventarios, ajuste de stock y ledger (protegido).
type InventoryHandler struct {
	uc     *usecase.InventoryUseCase
	engine *stock.Engine
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, engine *stock.Engine) *InventoryHandler {
	return &InventoryHandler{uc: uc, engine: engine}
}

// List godoc
// @Summary      Listar inventarios
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Ítems por página"  default(10)
// @Param        name      query  string  false  "Filtro por nombre (contains)"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 10),
		Name:    c.Query("name"),
	}
	page.DefaultPage()
	list, total, err := h.uc.List(c.Context(), page.Name, page.PerPage, page.Offset())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.InventoryListResponse{
		Items: dto.ToInventoryResponses(list),
		Meta:  dto.NewPageMeta(page.Page, page.PerPage, total),
	})
}

// ListAll godoc
// @Summary      Listar todos los inventarios sin paginación
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventories/all [get]
func (h *InventoryHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToInventoryResponses(list))
}

// GetByID godoc
// @Summary      Obtener inventario por ID
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inventario"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(inv))
}

// Create godoc
// @Summary      Crear inventario
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del inventario"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventories [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	inv, err := h.uc.Create(c.Context(), usecase.CreateInventoryInput{Name: in.Name, Unit: in.Unit})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToInventoryResponse(inv))
}

// Update godoc
// @Summary      Actualizar inventario
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del inventario"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	inv, err := h.uc.Update(c.Context(), c.Params("id"), usecase.UpdateInventoryInput{
		Name:  in.Name,
		Stock: in.Stock,
		Unit:  in.Unit,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(inv))
}

// Delete godoc
// @Summary      Eliminar inventario
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inventario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventories/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "inventario eliminado"})
}

// ManageStock godoc
// @Summary      Ajustar stock de inventario
// @Tags         inventories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManageStockRequest  true  "Ajuste (increase|decrease)"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventories/manage [post]
func (h *InventoryHandler) ManageStock(c *fiber.Ctx) error {
	var in dto.ManageStockRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	inv, err := h.engine.AdjustInventory(c.Context(), stock.AdjustInput{
		ID:       in.ID,
		Quantity: in.Quantity,
		Action:   in.Action,
		Memo:     in.Memo,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(inv))
}

// Logs godoc
// @Summary      Ledger de inventario (más reciente primero)
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LogResponse
// @Router       /api/inventories/logs [get]
func (h *InventoryHandler) Logs(c *fiber.Ctx) error {
	logs, err := h.uc.Logs(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToInventoryLogResponses(logs))
}
