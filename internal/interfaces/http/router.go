package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tu-usuario/warehouse-analytics/internal/application/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *store.Store
	Controller Refresher
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	dashboard := api.Group("/dashboard")
	handler := NewDashboardHandler(deps.Store, deps.Controller)
	dashboard.Get("/snapshot", handler.GetSnapshot)
	dashboard.Get("/metrics", handler.GetMetrics)
	dashboard.Get("/inventory", handler.GetInventory)
	dashboard.Get("/heatmap", handler.GetHeatmap)
	dashboard.Get("/demand", handler.GetDemand)
	dashboard.Get("/trends", handler.GetTrends)
	dashboard.Get("/products", handler.GetProducts)
	dashboard.Post("/refresh", handler.Refresh)
	dashboard.Put("/interval", handler.SetInterval)

	// Exposición Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
