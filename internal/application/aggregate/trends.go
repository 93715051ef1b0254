package aggregate

import (
	"math"
	"sort"

	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// Trends compone el roll-up diario a partir de las tres fuentes: por cada
// fecha (prefijo YYYY-MM-DD del timestamp primario) suma el stock del
// inventario, suma las ventas y cuenta las alertas; de éstas, cuenta como
// reposiciones las que contienen "restock".
//
// Ratios derivados por punto:
//
//	inventory_turnover  = round(ventas/inventario · 100)/100, 0 si inventario = 0
//	stock_coverage_days = round(inventario/ventas), 999 si ventas = 0
//	restock_efficiency  = round(ventas/reposiciones · 100)/100, 0 si no hubo
//	alert_severity      = high (>5), medium (>2), low
//
// La salida queda ordenada por fecha ascendente.
func Trends(
	inventory []entity.InventoryRecord,
	sales []entity.SalesEntry,
	alerts []entity.SensorAlert,
) []entity.TrendPoint {
	points := make(map[string]*entity.TrendPoint)

	at := func(date string) *entity.TrendPoint {
		if p, ok := points[date]; ok {
			return p
		}
		p := &entity.TrendPoint{Date: date, AlertSeverity: entity.SeverityLow}
		points[date] = p
		return p
	}

	for _, r := range inventory {
		at(entity.DateOf(r.LastUpdated)).InventoryLevel += r.Stock
	}
	for _, s := range sales {
		at(entity.DateOf(s.Date)).Sales += s.Sales
	}
	for _, a := range alerts {
		p := at(entity.DateOf(a.Timestamp))
		p.Alerts++
		if a.IsRestock() {
			p.Restocks++
		}
	}

	out := make([]entity.TrendPoint, 0, len(points))
	for _, p := range points {
		if p.InventoryLevel > 0 {
			p.InventoryTurnover = math.Round(float64(p.Sales)/float64(p.InventoryLevel)*100) / 100
		}
		if p.Sales > 0 {
			p.StockCoverageDays = int(math.Round(float64(p.InventoryLevel) / float64(p.Sales)))
		} else {
			p.StockCoverageDays = entity.StockCoverageSentinel
		}
		if p.Restocks > 0 {
			p.RestockEfficiency = math.Round(float64(p.Sales)/float64(p.Restocks)*100) / 100
		}
		p.AlertSeverity = entity.SeverityFor(p.Alerts)
		out = append(out, *p)
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].Date < out[b].Date
	})
	return out
}
