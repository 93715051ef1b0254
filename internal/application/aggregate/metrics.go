package aggregate

import "github.com/tu-usuario/warehouse-analytics/internal/domain/entity"

// Metrics computa los KPIs de cabecera sobre el inventario ya deduplicado y
// las celdas del heatmap. low_stock_items usa el umbral propio de cada
// registro (o el default 20 si falta).
func Metrics(inventory []entity.InventoryRecord, cells []entity.HeatmapCell) entity.DashboardMetrics {
	m := entity.DashboardMetrics{TotalProducts: len(inventory)}

	for _, item := range inventory {
		threshold := item.MinThreshold
		if threshold <= 0 {
			threshold = entity.DefaultMinThreshold
		}
		if item.Stock < threshold {
			m.LowStockItems++
		}
		m.TotalInventory += item.Stock
	}
	for _, c := range cells {
		m.TotalRFIDActivity += c.ActivityCount
	}
	return m
}
