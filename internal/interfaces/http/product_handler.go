package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// ProductHandler maneja las peticiones HTTP para los productos del inventario.
type ProductHandler struct {
	uc *inventory.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// queryFromCtx arma los parámetros de derivación desde la query string.
func queryFromCtx(c *fiber.Ctx) inventory.Query {
	return inventory.Query{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
}

// List godoc
// @Summary      Listar productos visibles
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Subcadena sobre nombre, ubicación o código"
// @Param        category  query  string  false  "Filtro de categoría (vacío = todas)"
// @Param        sort      query  string  false  "name-asc|name-desc|price-asc|price-desc|quantity-asc|quantity-desc"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	visible := h.uc.Visible(queryFromCtx(c))
	return c.JSON(dto.ToProductListResponse(visible))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	product := h.uc.Get(id)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(*product))
}

// Create godoc
// @Summary      Crear producto desde el formulario
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductForm  true  "Campos crudos del formulario"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = 0 // la asignación del ID es del store, nunca del cliente
	product, verr := inventory.ParseForm(in)
	if verr != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: verr.Fields})
	}
	out, err := h.uc.Add(c.Context(), *product)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(*out))
}

// Update godoc
// @Summary      Actualizar producto desde el formulario
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductForm  true  "Campos crudos del formulario"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	product, verr := inventory.ParseForm(in)
	if verr != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: verr.Fields})
	}
	out, uerr := h.uc.Update(c.Context(), *product)
	if uerr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT", Message: uerr.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(*out))
}

// Delete godoc
// @Summary      Eliminar producto (flujo de confirmación en dos pasos)
// @Tags         products
// @Produce      json
// @Param        id       path   int     true   "ID del producto"
// @Param        confirm  query  bool    false  "true para confirmar el borrado"
// @Success      200  {object}  map[string]bool
// @Failure      409  {object}  dto.ConfirmDeleteResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	outcome := h.uc.Remove(c.Context(), id, c.QueryBool("confirm"))
	if !outcome.Deleted {
		return c.Status(fiber.StatusConflict).JSON(dto.ConfirmDeleteResponse{Code: "CONFIRM_REQUIRED", Prompt: outcome.Prompt})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// StartEdit godoc
// @Summary      Abrir sesión de edición sobre un producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/edit [post]
func (h *ProductHandler) StartEdit(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	product := h.uc.StartEdit(id)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.ToProductResponse(*product))
}

// CancelEdit godoc
// @Summary      Cancelar la sesión de edición vigente
// @Tags         products
// @Produce      json
// @Success      204
// @Router       /api/products/edit [delete]
func (h *ProductHandler) CancelEdit(c *fiber.Ctx) error {
	h.uc.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID extrae el parámetro de ruta :id. Si no es numérico responde 400 y
// devuelve ok=false.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
		return 0, false
	}
	return id, true
}
