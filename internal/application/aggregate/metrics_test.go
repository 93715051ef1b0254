package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/warehouse-analytics/internal/application/aggregate"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// TestMetrics_EscenarioBase inventario [5/20, 25/20] y RFID [3, 7] →
// (2 productos, 1 bajo stock, 30 de inventario, 10 de actividad).
func TestMetrics_EscenarioBase(t *testing.T) {
	inventory := []entity.InventoryRecord{
		{ProductID: "P001", Stock: 5, MinThreshold: 20, LastUpdated: "2025-07-01"},
		{ProductID: "P002", Stock: 25, MinThreshold: 20, LastUpdated: "2025-07-01"},
	}
	cells := []entity.HeatmapCell{
		{Location: "A", Hour: 9, ActivityCount: 3},
		{Location: "B", Hour: 14, ActivityCount: 7},
	}

	m := aggregate.Metrics(inventory, cells)

	assert.Equal(t, entity.DashboardMetrics{
		TotalProducts:     2,
		LowStockItems:     1,
		TotalInventory:    30,
		TotalRFIDActivity: 10,
	}, m)
}

// TestMetrics_UmbralPorDefecto sin min_threshold se compara contra 20.
func TestMetrics_UmbralPorDefecto(t *testing.T) {
	inventory := []entity.InventoryRecord{
		{ProductID: "P001", Stock: 19, LastUpdated: "2025-07-01"},
		{ProductID: "P002", Stock: 20, LastUpdated: "2025-07-01"},
	}

	m := aggregate.Metrics(inventory, nil)

	assert.Equal(t, 1, m.LowStockItems, "19 < 20 cuenta, 20 no (desigualdad estricta)")
}

// TestMetrics_TotalCoincideConDeduplicado total_inventory es la suma del
// stock del inventario ya deduplicado.
func TestMetrics_TotalCoincideConDeduplicado(t *testing.T) {
	raw := []entity.InventoryRecord{
		{ProductID: "P001", Stock: 10, MinThreshold: 20, LastUpdated: "2025-07-01"},
		{ProductID: "P001", Stock: 5, MinThreshold: 20, LastUpdated: "2025-07-02"},
		{ProductID: "P002", Stock: 25, MinThreshold: 20, LastUpdated: "2025-07-01"},
	}

	summary := aggregate.Inventory(raw)
	m := aggregate.Metrics(summary.Items, nil)

	assert.Equal(t, summary.TotalStock, m.TotalInventory)
	assert.Equal(t, 30, m.TotalInventory)
}

// TestMetrics_Vacio sin datos todo queda en cero.
func TestMetrics_Vacio(t *testing.T) {
	m := aggregate.Metrics(nil, nil)
	assert.Equal(t, entity.DashboardMetrics{}, m)
}
