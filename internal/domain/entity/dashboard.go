package entity

// DashboardMetrics KPIs de cabecera del dashboard, derivados del inventario
// deduplicado y de las celdas del heatmap RFID.
type DashboardMetrics struct {
	TotalProducts     int `json:"total_products"`
	LowStockItems     int `json:"low_stock_items"`
	TotalInventory    int `json:"total_inventory"`
	TotalRFIDActivity int `json:"total_rfid_activity"`
}
