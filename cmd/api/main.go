package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	appexport "github.com/jhoicas/inventario-local/internal/application/export"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/preferences"
	"github.com/jhoicas/inventario-local/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
	"github.com/jhoicas/inventario-local/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := localstore.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén clave-valor")
	}
	defer store.Close()

	m := metrics.New(prometheus.DefaultRegisterer)
	notifier := inventory.NewNotifier()

	inventoryUC := inventory.NewUseCase(store, notifier, log, m)
	if err := inventoryUC.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar inventario")
	}

	preferencesUC := preferences.NewUseCase(store, log)
	if err := preferencesUC.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar preferencias")
	}

	reportGen := infrapdf.NewMarotoReportGenerator()
	sheetExporter := excel.NewExporter()
	exportUC := appexport.NewUseCase(inventoryUC, reportGen, sheetExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Local API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:   inventoryUC,
		PreferencesUC: preferencesUC,
		ExportUC:      exportUC,
		Notifier:      notifier,
		JWTSecret:     cfg.Auth.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
