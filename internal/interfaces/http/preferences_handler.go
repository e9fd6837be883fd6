package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/preferences"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// PreferencesHandler maneja las preferencias de vista.
type PreferencesHandler struct {
	uc *preferences.UseCase
}

// NewPreferencesHandler construye el handler.
func NewPreferencesHandler(uc *preferences.UseCase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

func toPreferencesResponse(p entity.ViewPreferences) dto.PreferencesResponse {
	return dto.PreferencesResponse{ViewMode: p.ViewMode, DarkMode: p.DarkMode}
}

// Get godoc
// @Summary      Obtener preferencias de vista
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/preferences [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toPreferencesResponse(h.uc.Get()))
}

// SetViewMode godoc
// @Summary      Cambiar el modo de vista (cards | table)
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ViewModeRequest  true  "Modo de vista"
// @Success      200   {object}  dto.PreferencesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/preferences/view [put]
func (h *PreferencesHandler) SetViewMode(c *fiber.Ctx) error {
	var in dto.ViewModeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prefs, err := h.uc.SetViewMode(c.Context(), in.ViewMode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VIEW_MODE", Message: "modo de vista desconocido"})
	}
	return c.JSON(toPreferencesResponse(prefs))
}

// ToggleView godoc
// @Summary      Alternar cards <-> table
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/preferences/view/toggle [post]
func (h *PreferencesHandler) ToggleView(c *fiber.Ctx) error {
	prefs, err := h.uc.ToggleViewMode(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toPreferencesResponse(prefs))
}

// SetDarkMode godoc
// @Summary      Activar o desactivar el modo oscuro
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DarkModeRequest  true  "Modo oscuro"
// @Success      200   {object}  dto.PreferencesResponse
// @Router       /api/preferences/dark-mode [put]
func (h *PreferencesHandler) SetDarkMode(c *fiber.Ctx) error {
	var in dto.DarkModeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prefs, err := h.uc.SetDarkMode(c.Context(), in.DarkMode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toPreferencesResponse(prefs))
}
