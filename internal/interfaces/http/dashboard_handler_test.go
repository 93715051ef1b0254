package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/warehouse-analytics/internal/application/aggregate"
	"github.com/tu-usuario/warehouse-analytics/internal/application/dto"
	"github.com/tu-usuario/warehouse-analytics/internal/application/store"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
	apihttp "github.com/tu-usuario/warehouse-analytics/internal/interfaces/http"
)

// stubRefresher registra los comandos recibidos del handler.
type stubRefresher struct {
	mu        sync.Mutex
	refreshes int
	intervals []time.Duration
}

func (s *stubRefresher) RefreshNow() {
	s.mu.Lock()
	s.refreshes++
	s.mu.Unlock()
}

func (s *stubRefresher) SetInterval(interval time.Duration) {
	s.mu.Lock()
	s.intervals = append(s.intervals, interval)
	s.mu.Unlock()
}

func setupApp(st *store.Store, ctrl *stubRefresher) *fiber.App {
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{Store: st, Controller: ctrl})
	return app
}

func publishedSnapshot() store.Snapshot {
	inventory := []entity.InventoryRecord{
		{ProductID: "P001", ProductName: "Widget A", Stock: 5, MinThreshold: 20, Location: "A1", LastUpdated: "2025-07-01T10:00:00Z"},
		{ProductID: "P002", ProductName: "Widget B", Stock: 25, MinThreshold: 20, Location: "A2", LastUpdated: "2025-07-01T10:00:00Z"},
	}
	a90 := 90.0
	preds := []entity.DemandPrediction{
		{ProductID: "P001", Date: "2025-07-01", PredictedDemand: 100, ActualDemand: &a90, Confidence: 0.9},
		{ProductID: "P002", Date: "2025-07-01", PredictedDemand: 40, Confidence: 0.8},
	}
	cells := []entity.HeatmapCell{{Location: "Zone A", Hour: 9, ActivityCount: 6}}
	return store.Snapshot{
		Inventory:   aggregate.Inventory(inventory),
		Demand:      aggregate.Demand(preds, ""),
		RFID:        aggregate.Heatmap(cells),
		Trends:      []entity.TrendPoint{{Date: "2025-07-01", InventoryLevel: 30, Sales: 6}},
		Products:    store.ProductUnion(inventory, preds),
		Metrics:     aggregate.Metrics(inventory, cells),
		RefreshedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestGetSnapshot_SinDatos antes del primer ciclo el snapshot responde 200
// con data nula, no 503: el estado "cargando" también es consultable.
func TestGetSnapshot_SinDatos(t *testing.T) {
	st := store.New()
	st.SetLoading(true)
	app := setupApp(st, &stubRefresher{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/snapshot", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.SnapshotResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Loading)
	assert.Nil(t, body.Data)
	assert.Nil(t, body.Error)
}

// TestGetSnapshot_ConDatos con snapshot publicado viene el view-model entero.
func TestGetSnapshot_ConDatos(t *testing.T) {
	st := store.New()
	st.Publish(publishedSnapshot())
	app := setupApp(st, &stubRefresher{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/snapshot", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.SnapshotResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Data)
	assert.Equal(t, []string{"P001", "P002"}, body.Data.Products)
	assert.Equal(t, 2, body.Data.Metrics.TotalProducts)
}

// TestWidgets_SinSnapshotResponden503 los endpoints por widget no tienen
// estado parcial que servir: sin snapshot devuelven NOT_READY.
func TestWidgets_SinSnapshotResponden503(t *testing.T) {
	app := setupApp(store.New(), &stubRefresher{})

	for _, path := range []string{
		"/api/dashboard/metrics",
		"/api/dashboard/inventory",
		"/api/dashboard/heatmap",
		"/api/dashboard/demand",
		"/api/dashboard/trends",
		"/api/dashboard/products",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err, path)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode, path)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), path)
		resp.Body.Close()
		assert.Equal(t, "NOT_READY", body.Code, path)
	}
}

// TestGetDemand_FiltraPorProducto el query param re-agrega sobre la serie
// publicada.
func TestGetDemand_FiltraPorProducto(t *testing.T) {
	st := store.New()
	st.Publish(publishedSnapshot())
	app := setupApp(st, &stubRefresher{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/dashboard/demand?product_id=P002", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body aggregate.DemandSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Predictions, 1)
	assert.Equal(t, "P002", body.Predictions[0].ProductID)
	assert.True(t, body.Accuracy.PredictionOnly, "P002 no tiene demanda real observada")
}

// TestRefresh_Responde202YDelega el POST dispara el comando y responde
// Accepted sin esperar al ciclo.
func TestRefresh_Responde202YDelega(t *testing.T) {
	st := store.New()
	ctrl := &stubRefresher{}
	app := setupApp(st, ctrl)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/dashboard/refresh", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	assert.Equal(t, 1, ctrl.refreshes)
}

// TestSetInterval_ValidaYDelega intervalos no positivos se rechazan con 400
// y no llegan al controlador.
func TestSetInterval_ValidaYDelega(t *testing.T) {
	st := store.New()
	ctrl := &stubRefresher{}
	app := setupApp(st, ctrl)

	req := httptest.NewRequest("PUT", "/api/dashboard/interval", strings.NewReader(`{"interval_ms":60000}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, ctrl.intervals, 1)
	assert.Equal(t, time.Minute, ctrl.intervals[0])

	for _, body := range []string{`{"interval_ms":0}`, `{"interval_ms":-5}`, `no-json`} {
		req := httptest.NewRequest("PUT", "/api/dashboard/interval", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err, body)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
	assert.Len(t, ctrl.intervals, 1, "los intervalos inválidos no llegan al controlador")
}

// TestMetricsPrometheus_Expuesto /metrics sirve la exposición Prometheus.
func TestMetricsPrometheus_Expuesto(t *testing.T) {
	app := setupApp(store.New(), &stubRefresher{})

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "go_goroutines")
}
