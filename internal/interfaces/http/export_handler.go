package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/export"
)

// ExportHandler sirve las descargas del inventario (PDF, XLSX).
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PDF godoc
// @Summary      Descargar el reporte PDF del listado visible
// @Tags         export
// @Produce      application/pdf
// @Param        search    query  string  false  "Subcadena de búsqueda"
// @Param        category  query  string  false  "Filtro de categoría"
// @Param        sort      query  string  false  "Opción de orden"
// @Success      200  {file}  binary
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.PDF(c.Context(), queryFromCtx(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(doc)
}

// XLSX godoc
// @Summary      Descargar la hoja de cálculo del listado visible
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search    query  string  false  "Subcadena de búsqueda"
// @Param        category  query  string  false  "Filtro de categoría"
// @Param        sort      query  string  false  "Opción de orden"
// @Success      200  {file}  binary
// @Router       /api/export/xlsx [get]
func (h *ExportHandler) XLSX(c *fiber.Ctx) error {
	doc, err := h.uc.XLSX(c.Context(), queryFromCtx(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(doc)
}
