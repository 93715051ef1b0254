package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/warehouse-analytics/internal/application/refresh"
	"github.com/tu-usuario/warehouse-analytics/internal/application/store"
	"github.com/tu-usuario/warehouse-analytics/internal/infrastructure/mock"
	"github.com/tu-usuario/warehouse-analytics/internal/infrastructure/upstream"
	httpRouter "github.com/tu-usuario/warehouse-analytics/internal/interfaces/http"
	"github.com/tu-usuario/warehouse-analytics/pkg/config"
	"github.com/tu-usuario/warehouse-analytics/pkg/logger"
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
		Str("api_base", cfg.Upstream.APIBaseURL).
		Str("sales_base", cfg.Upstream.SalesAPIURL).
		Dur("interval", cfg.Refresh.Interval).
		Msg("iniciando aplicación")

	client := upstream.NewClient(cfg.Upstream)
	provider := mock.NewProvider(mock.Seed())
	viewModel := store.New()

	controller := refresh.NewController(client, provider, viewModel, log, refresh.Config{
		TrendsFromAPI: cfg.Refresh.TrendsFromAPI,
	})
	controller.Start(cfg.Refresh.Interval)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      viewModel,
		Controller: controller,
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

	// Primero se desmonta el store: un ciclo en vuelo corre hasta el final
	// pero su publicación queda suprimida.
	viewModel.Close()
	controller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
