// Package refresh posee el ciclo de vida fetch → normalize → aggregate →
// publish del dashboard: un ciclo inmediato al arrancar, repetición a
// intervalo fijo, disparo manual y parada con supresión de publicación.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/warehouse-analytics/internal/application/aggregate"
	"github.com/tu-usuario/warehouse-analytics/internal/application/normalize"
	"github.com/tu-usuario/warehouse-analytics/internal/application/store"
	"github.com/tu-usuario/warehouse-analytics/internal/domain"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
	"github.com/tu-usuario/warehouse-analytics/pkg/logger"
	"github.com/tu-usuario/warehouse-analytics/pkg/metrics"
)

// DefaultInterval intervalo usado si el caller pasa uno no positivo. Los
// intervalos habituales de la UI son 10 s, 30 s, 60 s y 5 min, pero cualquier
// valor positivo vale.
const DefaultInterval = 30 * time.Second

// UpstreamAPI puerto hacia el adaptador de transporte.
type UpstreamAPI interface {
	InventoryLevels(ctx context.Context) ([]entity.InventoryRecord, error)
	DemandPredictions(ctx context.Context, productID string) ([]entity.DemandPrediction, error)
	RFIDLogs(ctx context.Context, startDate, endDate string) ([]entity.RFIDLog, error)
	SensorAlerts(ctx context.Context) ([]entity.SensorAlert, error)
	Sales(ctx context.Context) ([]entity.SalesEntry, error)
}

// MockSource puerto hacia el proveedor de datos sintéticos.
type MockSource interface {
	InventoryLevels() []entity.InventoryRecord
	DemandPredictions() []entity.DemandPrediction
	RFIDLogs() []entity.RFIDLog
	SensorAlerts() []entity.SensorAlert
	Sales() []entity.SalesEntry
	Trends() []entity.TrendPoint
	SampleHeatmap() []entity.HeatmapCell
}

// Config opciones del controlador.
type Config struct {
	// TrendsFromAPI compone las tendencias desde /sales y /sensor-alert en
	// lugar del feed mock (extensión; el feed mock es el camino por defecto).
	TrendsFromAPI bool
}

// Controller orquesta los ciclos de refresco. Como mucho hay un ciclo en
// vuelo: el tick del timer y el disparo manual se ignoran mientras se está
// haciendo fetch, así que la publicación del ciclo N siempre precede a la
// del N+1.
type Controller struct {
	api   UpstreamAPI
	mock  MockSource
	store *store.Store
	log   *logger.Logger
	cfg   Config

	mu       sync.Mutex
	ticker   *time.Ticker
	stopCh   chan struct{}
	running  bool
	fetching bool
}

// NewController construye el controlador.
func NewController(api UpstreamAPI, mock MockSource, st *store.Store, log *logger.Logger, cfg Config) *Controller {
	return &Controller{api: api, mock: mock, store: st, log: log, cfg: cfg}
}

// Start ejecuta un ciclo inmediato y programa los siguientes a intervalo
// fijo. Llamadas repetidas con el controlador ya corriendo no hacen nada.
func (c *Controller) Start(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.ticker = time.NewTicker(interval)
	c.stopCh = make(chan struct{})
	stopCh, ticker := c.stopCh, c.ticker
	c.mu.Unlock()

	go func() {
		c.runCycle(context.Background())
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				c.runCycle(context.Background())
			}
		}
	}()
}

// SetInterval cancela el timer en curso y lo rearma con el nuevo intervalo,
// sin disparar un fetch.
func (c *Controller) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.ticker.Reset(interval)
	}
}

// RefreshNow dispara un ciclo manual. Si ya hay un ciclo en vuelo es no-op.
func (c *Controller) RefreshNow() {
	go c.runCycle(context.Background())
}

// Stop detiene la programación. Un ciclo en vuelo no se cancela: corre hasta
// el final, y su publicación la suprime el Close del store si el caller
// desmonta también el store.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	c.ticker.Stop()
	close(c.stopCh)
}

// Fetching indica si hay un ciclo en vuelo.
func (c *Controller) Fetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

func (c *Controller) beginFetch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetching {
		return false
	}
	c.fetching = true
	return true
}

func (c *Controller) endFetch() {
	c.mu.Lock()
	c.fetching = false
	c.mu.Unlock()
}

// rawData resultado crudo de los fetches de un ciclo.
type rawData struct {
	inventory []entity.InventoryRecord
	demand    []entity.DemandPrediction
	logs      []entity.RFIDLog
	trends    []entity.TrendPoint
	sales     []entity.SalesEntry
	alerts    []entity.SensorAlert
	// composed indica que las tendencias se componen de inventario + ventas
	// + alertas en vez de venir listas en trends.
	composed bool
}

// runCycle ejecuta un ciclo completo. Los fallos de endpoint individuales se
// sustituyen por el mock y el ciclo aún publica; solo un fallo del paso de
// agregación deja error en el store (con el snapshot previo intacto).
func (c *Controller) runCycle(ctx context.Context) {
	if !c.beginFetch() {
		return
	}
	defer c.endFetch()

	start := time.Now()
	log := logger.Sub(c.log.With().Str("cycle_id", uuid.NewString()))
	c.store.SetLoading(true)

	raw := c.fetchAll(ctx, log)
	snap, err := c.buildSnapshot(raw)
	if err != nil {
		metrics.RefreshCycles.WithLabelValues("aggregation_error").Inc()
		log.Error().Err(err).Msg("ciclo de refresco fallido en la agregación")
		c.store.Fail(err)
		return
	}

	c.store.Publish(*snap)
	metrics.RefreshCycles.WithLabelValues("success").Inc()
	metrics.CycleDuration.Observe(time.Since(start).Seconds())
	metrics.SnapshotRecords.WithLabelValues("inventory").Set(float64(len(snap.Inventory.Items)))
	metrics.SnapshotRecords.WithLabelValues("demand").Set(float64(len(snap.Demand.Predictions)))
	metrics.SnapshotRecords.WithLabelValues("trends").Set(float64(len(snap.Trends)))
	metrics.SnapshotRecords.WithLabelValues("products").Set(float64(len(snap.Products)))

	log.Info().
		Int("inventory", len(snap.Inventory.Items)).
		Int("demand", len(snap.Demand.Predictions)).
		Int("trends", len(snap.Trends)).
		Int("products", len(snap.Products)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot publicado")
}

// fetchAll lanza los cuatro fetches del ciclo en paralelo y espera a todos.
// Cada endpoint caído (Transport/Timeout/Decode) se sustituye en silencio por
// el dataset mock de ese endpoint.
func (c *Controller) fetchAll(ctx context.Context, log *logger.Logger) rawData {
	invCh := make(chan []entity.InventoryRecord, 1)
	demCh := make(chan []entity.DemandPrediction, 1)
	logsCh := make(chan []entity.RFIDLog, 1)

	go func() {
		recs, err := c.api.InventoryLevels(ctx)
		if err != nil {
			recs = c.mock.InventoryLevels()
			c.fallback(log, "inventory-levels", err)
		}
		invCh <- recs
	}()
	go func() {
		preds, err := c.api.DemandPredictions(ctx, "")
		if err != nil {
			preds = c.mock.DemandPredictions()
			c.fallback(log, "predict-demand", err)
		}
		demCh <- preds
	}()
	go func() {
		logs, err := c.api.RFIDLogs(ctx, "", "")
		if err != nil {
			logs = c.mock.RFIDLogs()
			c.fallback(log, "rfid-logs", err)
		}
		logsCh <- logs
	}()

	raw := rawData{}
	if c.cfg.TrendsFromAPI {
		// extensión: componer tendencias desde ventas + alertas reales
		salesCh := make(chan []entity.SalesEntry, 1)
		alertsCh := make(chan []entity.SensorAlert, 1)
		go func() {
			sales, err := c.api.Sales(ctx)
			if err != nil {
				sales = c.mock.Sales()
				c.fallback(log, "sales", err)
			}
			salesCh <- sales
		}()
		go func() {
			alerts, err := c.api.SensorAlerts(ctx)
			if err != nil {
				alerts = c.mock.SensorAlerts()
				c.fallback(log, "sensor-alert", err)
			}
			alertsCh <- alerts
		}()
		raw.sales = <-salesCh
		raw.alerts = <-alertsCh
		raw.composed = true
	} else {
		// el feed de tendencias real sigue deshabilitado: el mock es la
		// fuente autoritativa
		raw.trends = c.mock.Trends()
	}

	raw.inventory = <-invCh
	raw.demand = <-demCh
	raw.logs = <-logsCh
	return raw
}

func (c *Controller) fallback(log *logger.Logger, endpoint string, err error) {
	metrics.EndpointFallbacks.WithLabelValues(endpoint).Inc()
	log.Warn().Err(err).Str("endpoint", endpoint).Msg("upstream caído, usando datos mock")
}

// buildSnapshot ejecuta la agregación en el orden fijo Inventario → RFID →
// Tendencias → Demanda → Métricas. Un panic de agregación se convierte en
// domain.ErrAggregation en lugar de tumbar el proceso.
func (c *Controller) buildSnapshot(raw rawData) (snap *store.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrAggregation, r)
		}
	}()

	inventory := normalize.Inventory(raw.inventory)
	invSummary := aggregate.Inventory(inventory)

	cells := normalize.HeatmapCells(aggregate.CellsFromLogs(normalize.RFIDLogs(raw.logs)))
	if len(cells) == 0 {
		// hasta el heatmap derivado quedó vacío: patrón muestreado
		cells = normalize.HeatmapCells(c.mock.SampleHeatmap())
	}
	heatmap := aggregate.Heatmap(cells)

	var trends []entity.TrendPoint
	if raw.composed {
		trends = aggregate.Trends(inventory, normalize.Sales(raw.sales), normalize.Alerts(raw.alerts))
	} else {
		trends = normalize.Trends(raw.trends)
	}

	demand := aggregate.Demand(normalize.Demand(raw.demand), "")

	return &store.Snapshot{
		Inventory:   invSummary,
		Demand:      demand,
		RFID:        heatmap,
		Trends:      trends,
		Products:    store.ProductUnion(inventory, demand.Predictions),
		Metrics:     aggregate.Metrics(invSummary.Items, cells),
		RefreshedAt: time.Now(),
	}, nil
}
