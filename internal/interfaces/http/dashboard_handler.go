package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-analytics/internal/application/aggregate"
	"github.com/tu-usuario/warehouse-analytics/internal/application/dto"
	"github.com/tu-usuario/warehouse-analytics/internal/application/store"
)

// Refresher comandos que la API expone del controlador de refresco.
type Refresher interface {
	RefreshNow()
	SetInterval(interval time.Duration)
}

// DashboardHandler sirve el snapshot y los agregados por widget.
type DashboardHandler struct {
	store *store.Store
	ctrl  Refresher
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(st *store.Store, ctrl Refresher) *DashboardHandler {
	return &DashboardHandler{store: st, ctrl: ctrl}
}

// snapshotOr503 devuelve el snapshot actual o responde 503 si aún no se ha
// publicado ninguno (primer ciclo en curso o fallido).
func (h *DashboardHandler) snapshotOr503(c *fiber.Ctx) (store.Snapshot, bool) {
	snap, ok := h.store.Snapshot()
	if !ok {
		_ = c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "NOT_READY", Message: "aún no hay snapshot publicado",
		})
	}
	return snap, ok
}

// GetSnapshot devuelve el view-model completo.
// GET /api/dashboard/snapshot
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	resp := dto.SnapshotResponse{Loading: h.store.Loading()}
	if msg := h.store.Err(); msg != "" {
		resp.Error = &msg
	}
	if snap, ok := h.store.Snapshot(); ok {
		resp.Data = &snap
	}
	return c.JSON(resp)
}

// GetMetrics devuelve los KPIs de cabecera.
// GET /api/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return nil
	}
	return c.JSON(snap.Metrics)
}

// GetInventory devuelve el inventario deduplicado con los buckets de estado.
// GET /api/dashboard/inventory
func (h *DashboardHandler) GetInventory(c *fiber.Ctx) error {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return nil
	}
	return c.JSON(snap.Inventory)
}

// GetHeatmap devuelve la matriz de actividad RFID y sus estadísticos.
// GET /api/dashboard/heatmap
func (h *DashboardHandler) GetHeatmap(c *fiber.Ctx) error {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return nil
	}
	return c.JSON(snap.RFID)
}

// GetDemand devuelve la serie de demanda, opcionalmente filtrada por
// producto, con su resumen de precisión.
// GET /api/dashboard/demand?product_id=
func (h *DashboardHandler) GetDemand(c *fiber.Ctx) error {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return nil
	}
	productID := c.Query("product_id")
	if productID == "" {
		return c.JSON(snap.Demand)
	}
	// re-agrega sobre la serie ya publicada; la serie es inmutable
	return c.JSON(aggregate.Demand(snap.Demand.Predictions, productID))
}

// GetTrends devuelve el roll-up diario de tendencias.
// GET /api/dashboard/trends
func (h *DashboardHandler) GetTrends(c *fiber.Ctx) error {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return nil
	}
	return c.JSON(snap.Trends)
}

// GetProducts devuelve la lista de productos del snapshot.
// GET /api/dashboard/products
func (h *DashboardHandler) GetProducts(c *fiber.Ctx) error {
	snap, ok := h.snapshotOr503(c)
	if !ok {
		return nil
	}
	return c.JSON(snap.Products)
}

// Refresh dispara un ciclo manual; si ya hay uno en vuelo el comando se
// ignora en el controlador.
// POST /api/dashboard/refresh
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	h.ctrl.RefreshNow()
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "refresco disparado"})
}

// SetInterval rearma el timer de refresco sin disparar un fetch.
// PUT /api/dashboard/interval
func (h *DashboardHandler) SetInterval(c *fiber.Ctx) error {
	var in dto.SetIntervalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if in.IntervalMS <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "interval_ms debe ser positivo",
		})
	}
	h.ctrl.SetInterval(time.Duration(in.IntervalMS) * time.Millisecond)
	return c.JSON(fiber.Map{"interval_ms": in.IntervalMS})
}
