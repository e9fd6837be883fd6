package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-local/internal/application/export"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/preferences"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC   *inventory.UseCase
	PreferencesUC *preferences.UseCase
	ExportUC      *export.UseCase
	Notifier      *inventory.Notifier
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas Prometheus (público)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Toda la API pasa por la guardia; con secret vacío queda abierta.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/edit", productHandler.CancelEdit)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/edit", productHandler.StartEdit)

	// Stats
	statsHandler := NewStatsHandler(deps.InventoryUC)
	api.Get("/stats", statsHandler.Get)

	// Preferences
	prefs := api.Group("/preferences")
	preferencesHandler := NewPreferencesHandler(deps.PreferencesUC)
	prefs.Get("/", preferencesHandler.Get)
	prefs.Put("/view", preferencesHandler.SetViewMode)
	prefs.Post("/view/toggle", preferencesHandler.ToggleView)
	prefs.Put("/dark-mode", preferencesHandler.SetDarkMode)

	// Notifications
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Notifier)
	notifications.Get("/current", notificationHandler.Current)
	notifications.Delete("/current", notificationHandler.Dismiss)

	// Exports
	exports := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/pdf", exportHandler.PDF)
	exports.Get("/xlsx", exportHandler.XLSX)
}
