// Package normalize convierte la salida cruda del adaptador (o del proveedor
// mock) a la forma canónica interna, descartando en silencio los registros
// malformados. Todas las funciones son idempotentes: normalizar dos veces da
// el mismo resultado que normalizar una.
package normalize

import "github.com/tu-usuario/warehouse-analytics/internal/domain/entity"

// Inventory conserva los registros con product_id, timestamp parseable y
// stock no negativo.
func Inventory(records []entity.InventoryRecord) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0, len(records))
	for _, r := range records {
		if r.ProductID == "" || r.Stock < 0 {
			continue
		}
		if _, ok := entity.ParseTimestamp(r.LastUpdated); !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RFIDLogs conserva las lecturas con ubicación, producto y timestamp parseable.
func RFIDLogs(logs []entity.RFIDLog) []entity.RFIDLog {
	out := make([]entity.RFIDLog, 0, len(logs))
	for _, l := range logs {
		if l.Location == "" || l.ProductID == "" {
			continue
		}
		if _, ok := entity.ParseTimestamp(l.Timestamp); !ok {
			continue
		}
		out = append(out, l)
	}
	return out
}

// HeatmapCells conserva las celdas con conteo ≥ 0, hora dentro de [0,23] y
// ubicación no vacía. Una hora fuera de rango nunca cabría en la matriz densa
// y rompería el invariante Σ celdas = Σ actividad, así que se descarta aquí.
func HeatmapCells(cells []entity.HeatmapCell) []entity.HeatmapCell {
	out := make([]entity.HeatmapCell, 0, len(cells))
	for _, c := range cells {
		if c.Location == "" || c.ActivityCount < 0 {
			continue
		}
		if c.Hour < 0 || c.Hour > 23 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Demand conserva las predicciones con producto, fecha, demanda prevista ≥ 0
// y demanda real ≥ 0 cuando está presente.
func Demand(preds []entity.DemandPrediction) []entity.DemandPrediction {
	out := make([]entity.DemandPrediction, 0, len(preds))
	for _, p := range preds {
		if p.ProductID == "" || p.Date == "" || p.PredictedDemand < 0 {
			continue
		}
		if p.ActualDemand != nil && *p.ActualDemand < 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sales conserva las entradas con producto, fecha y ventas ≥ 0.
func Sales(entries []entity.SalesEntry) []entity.SalesEntry {
	out := make([]entity.SalesEntry, 0, len(entries))
	for _, s := range entries {
		if s.ProductID == "" || s.Date == "" || s.Sales < 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Alerts conserva las alertas con mensaje y timestamp parseable.
func Alerts(alerts []entity.SensorAlert) []entity.SensorAlert {
	out := make([]entity.SensorAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Alert == "" {
			continue
		}
		if _, ok := entity.ParseTimestamp(a.Timestamp); !ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Trends conserva los puntos con fecha y conteos no negativos.
func Trends(points []entity.TrendPoint) []entity.TrendPoint {
	out := make([]entity.TrendPoint, 0, len(points))
	for _, t := range points {
		if t.Date == "" || t.InventoryLevel < 0 || t.Sales < 0 || t.Restocks < 0 || t.Alerts < 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}
