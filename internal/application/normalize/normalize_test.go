package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/warehouse-analytics/internal/application/normalize"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// TestInventory_DescartaMalformados se descartan en silencio los registros
// sin producto, con stock negativo o con timestamp no parseable.
func TestInventory_DescartaMalformados(t *testing.T) {
	records := []entity.InventoryRecord{
		{ProductID: "P001", Stock: 10, LastUpdated: "2025-01-01T00:00:00Z"},
		{ProductID: "", Stock: 10, LastUpdated: "2025-01-01T00:00:00Z"},
		{ProductID: "P002", Stock: -3, LastUpdated: "2025-01-01T00:00:00Z"},
		{ProductID: "P003", Stock: 7, LastUpdated: "ayer"},
	}

	out := normalize.Inventory(records)

	require.Len(t, out, 1)
	assert.Equal(t, "P001", out[0].ProductID)
}

// TestHeatmapCells_ReglasDeValidez una celda sobrevive sii el conteo es ≥ 0,
// la hora cabe en [0,23] y la ubicación no es vacía.
func TestHeatmapCells_ReglasDeValidez(t *testing.T) {
	cells := []entity.HeatmapCell{
		{Location: "A", Hour: 0, ActivityCount: 0},
		{Location: "A", Hour: 23, ActivityCount: 5},
		{Location: "", Hour: 10, ActivityCount: 5},
		{Location: "B", Hour: 24, ActivityCount: 5},
		{Location: "B", Hour: -1, ActivityCount: 5},
		{Location: "B", Hour: 10, ActivityCount: -2},
	}

	out := normalize.HeatmapCells(cells)

	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].ActivityCount, "conteo cero es válido")
}

// TestDemand_DescartaNegativos demanda prevista o real negativa invalida la
// entrada; la real ausente es válida (fecha futura).
func TestDemand_DescartaNegativos(t *testing.T) {
	negative := -1.0
	zero := 0.0
	preds := []entity.DemandPrediction{
		{ProductID: "P001", Date: "2025-01-01", PredictedDemand: 10, Confidence: 0.8},
		{ProductID: "P001", Date: "2025-01-02", PredictedDemand: -5, Confidence: 0.8},
		{ProductID: "P001", Date: "2025-01-03", PredictedDemand: 10, ActualDemand: &negative, Confidence: 0.8},
		{ProductID: "P001", Date: "2025-01-04", PredictedDemand: 10, ActualDemand: &zero, Confidence: 0.8},
		{ProductID: "P001", Date: "", PredictedDemand: 10, Confidence: 0.8},
	}

	out := normalize.Demand(preds)

	require.Len(t, out, 2)
	assert.Equal(t, "2025-01-01", out[0].Date)
	assert.Equal(t, "2025-01-04", out[1].Date, "real = 0 es una observación válida")
}

// TestNormalize_Idempotencia normalizar dos veces da lo mismo que una.
func TestNormalize_Idempotencia(t *testing.T) {
	records := []entity.InventoryRecord{
		{ProductID: "P001", Stock: 10, LastUpdated: "2025-01-01T00:00:00Z"},
		{ProductID: "", Stock: 10, LastUpdated: "2025-01-01T00:00:00Z"},
	}
	cells := []entity.HeatmapCell{
		{Location: "A", Hour: 4, ActivityCount: 2},
		{Location: "B", Hour: 30, ActivityCount: 2},
	}
	logs := []entity.RFIDLog{
		{ID: 1, ProductID: "P001", Location: "A", Timestamp: "2025-01-01T04:00:00Z"},
		{ID: 2, ProductID: "P001", Location: "", Timestamp: "2025-01-01T04:00:00Z"},
	}

	invOnce := normalize.Inventory(records)
	assert.Equal(t, invOnce, normalize.Inventory(invOnce))

	cellsOnce := normalize.HeatmapCells(cells)
	assert.Equal(t, cellsOnce, normalize.HeatmapCells(cellsOnce))

	logsOnce := normalize.RFIDLogs(logs)
	assert.Equal(t, logsOnce, normalize.RFIDLogs(logsOnce))
}

// TestAlertsYVentas reglas mínimas de las familias restantes.
func TestAlertsYVentas(t *testing.T) {
	alerts := normalize.Alerts([]entity.SensorAlert{
		{ID: 1, Alert: "Low: Restock recommended", Timestamp: "2025-01-01T10:00:00Z"},
		{ID: 2, Alert: "", Timestamp: "2025-01-01T10:00:00Z"},
		{ID: 3, Alert: "Warning", Timestamp: "no-es-fecha"},
	})
	require.Len(t, alerts, 1)

	sales := normalize.Sales([]entity.SalesEntry{
		{ID: 1, ProductID: "P001", Sales: 5, Date: "2025-01-01"},
		{ID: 2, ProductID: "P001", Sales: -5, Date: "2025-01-01"},
		{ID: 3, ProductID: "", Sales: 5, Date: "2025-01-01"},
	})
	require.Len(t, sales, 1)

	trends := normalize.Trends([]entity.TrendPoint{
		{Date: "2025-01-01", InventoryLevel: 10},
		{Date: "", InventoryLevel: 10},
		{Date: "2025-01-02", Sales: -1},
	})
	require.Len(t, trends, 1)
}
