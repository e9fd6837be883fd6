package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// NotificationHandler expone la notificación transitoria vigente.
type NotificationHandler struct {
	notifier *inventory.Notifier
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(notifier *inventory.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// Current godoc
// @Summary      Notificación vigente (204 si no hay o ya expiró)
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  entity.Notification
// @Success      204
// @Router       /api/notifications/current [get]
func (h *NotificationHandler) Current(c *fiber.Ctx) error {
	notif := h.notifier.Current()
	if notif == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(notif)
}

// Dismiss godoc
// @Summary      Descartar la notificación vigente antes de expirar
// @Tags         notifications
// @Success      204
// @Router       /api/notifications/current [delete]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	h.notifier.Dismiss()
	return c.SendStatus(fiber.StatusNoContent)
}
