package entity

// AlertSeverity severidad diaria derivada del número de alertas.
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// SeverityFor aplica los umbrales: >5 high, >2 medium, resto low.
func SeverityFor(alerts int) AlertSeverity {
	switch {
	case alerts > 5:
		return SeverityHigh
	case alerts > 2:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// StockCoverageSentinel valor de stock_coverage_days cuando no hubo ventas
// (cobertura "efectivamente infinita").
const StockCoverageSentinel = 999

// TrendPoint es el roll-up diario de inventario, ventas y alertas con sus
// ratios derivados. Es una entidad derivada: nunca llega cruda del upstream
// operacional, la produce el agregador de tendencias o el proveedor mock.
type TrendPoint struct {
	Date              string        `json:"date"` // YYYY-MM-DD
	InventoryLevel    int           `json:"inventory_level"`
	Sales             int           `json:"sales"`
	Restocks          int           `json:"restocks"`
	Alerts            int           `json:"alerts"`
	InventoryTurnover float64       `json:"inventory_turnover"`
	StockCoverageDays int           `json:"stock_coverage_days"`
	RestockEfficiency float64       `json:"restock_efficiency"`
	AlertSeverity     AlertSeverity `json:"alert_severity"`
}
