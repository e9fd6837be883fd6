package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// StatsHandler expone las métricas agregadas del inventario.
type StatsHandler struct {
	uc *inventory.UseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *inventory.UseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Métricas agregadas del inventario
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats := h.uc.Stats()
	return c.JSON(dto.StatsResponse{
		TotalUnits:      stats.TotalUnits,
		TotalValue:      stats.TotalValue,
		TotalCategories: stats.TotalCategories,
	})
}
