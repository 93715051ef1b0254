// Package mock sintetiza datasets con el esquema canónico para cada endpoint
// del upstream. Se usa como sustituto silencioso cuando el adaptador de
// transporte reporta fallo, de modo que el dashboard sigue operativo offline.
//
// Los valores son aleatorios pero las distribuciones están acotadas para que
// los tests puedan afirmar propiedades estructurales; el *rand.Rand se inyecta
// para poder sembrarlo.
package mock

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/tu-usuario/warehouse-analytics/internal/application/refresh"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// mockProduct catálogo fijo de productos sintéticos.
type mockProduct struct {
	id        string
	name      string
	baseStock int
	threshold int
	location  string
}

var mockProducts = []mockProduct{
	{"P001", "Widget A", 45, 50, "A1"},
	{"P002", "Widget B", 15, 30, "A2"},
	{"P003", "Widget C", 8, 25, "B1"},
	{"P004", "Widget D", 75, 40, "B2"},
	{"P005", "Widget E", 32, 35, "C1"},
	{"P006", "Widget F", 22, 30, "C2"},
	{"P007", "Widget G", 5, 20, "D1"},
	{"P008", "Widget H", 88, 60, "D2"},
}

var mockLocations = []string{"Zone A", "Zone B", "Zone C", "Dock 1", "Dock 2"}

var alertMessages = []string{
	"Critical: Immediate restock needed",
	"Low: Restock recommended",
	"Warning: Below threshold",
	"Alert: Stock depletion detected",
	"Notice: Approaching minimum threshold",
}

// Provider genera los datasets sintéticos.
type Provider struct {
	rnd *rand.Rand
	now func() time.Time
}

// Verificar en tiempo de compilación que Provider implementa el puerto del
// controlador de refresco.
var _ refresh.MockSource = (*Provider)(nil)

// NewProvider construye el proveedor; rnd se inyecta para que los tests
// puedan usar una semilla fija.
func NewProvider(rnd *rand.Rand) *Provider {
	return &Provider{rnd: rnd, now: time.Now}
}

// NewProviderWithClock igual que NewProvider pero con reloj inyectado.
func NewProviderWithClock(rnd *rand.Rand, now func() time.Time) *Provider {
	return &Provider{rnd: rnd, now: now}
}

// InventoryLevels genera 8 productos × 30 días de instantáneas, con variación
// cíclica y ruido; el stock se recorta a ≥ 0.
func (p *Provider) InventoryLevels() []entity.InventoryRecord {
	records := make([]entity.InventoryRecord, 0, len(mockProducts)*30)

	for i := 0; i < 30; i++ {
		ts := p.now().AddDate(0, 0, -i).Format(time.RFC3339)
		for _, prod := range mockProducts {
			cyclical := math.Sin(float64(i)*0.2) * 10
			noise := float64(p.rnd.Intn(21) - 10) // ±10 unidades
			stock := int(math.Round(float64(prod.baseStock) + cyclical + noise))
			if stock < 0 {
				stock = 0
			}
			records = append(records, entity.InventoryRecord{
				ProductID:    prod.id,
				ProductName:  prod.name,
				Stock:        stock,
				MinThreshold: prod.threshold,
				Location:     prod.location,
				LastUpdated:  ts,
			})
		}
	}
	return records
}

// SensorAlerts genera 0–3 alertas por día durante 30 días, ordenadas de la
// más reciente a la más antigua.
func (p *Provider) SensorAlerts() []entity.SensorAlert {
	var alerts []entity.SensorAlert

	for i := 0; i < 30; i++ {
		day := p.now().AddDate(0, 0, -i)
		count := p.rnd.Intn(4)
		for j := 0; j < count; j++ {
			ts := time.Date(day.Year(), day.Month(), day.Day(),
				p.rnd.Intn(24), p.rnd.Intn(60), 0, 0, day.Location())
			alerts = append(alerts, entity.SensorAlert{
				ID:        i*10 + j + 1,
				ProductID: mockProducts[p.rnd.Intn(5)].id,
				Stock:     p.rnd.Intn(50) + 1,
				Alert:     alertMessages[p.rnd.Intn(len(alertMessages))],
				Timestamp: ts.Format(time.RFC3339),
			})
		}
	}

	sort.Slice(alerts, func(a, b int) bool {
		return alerts[a].Timestamp > alerts[b].Timestamp
	})
	return alerts
}

// RFIDLogs genera 100 lecturas repartidas entre 5 ubicaciones y 5 productos
// en una ventana de 7 días.
func (p *Provider) RFIDLogs() []entity.RFIDLog {
	scanTypes := []entity.ScanType{entity.ScanIn, entity.ScanOut, entity.ScanMove}
	logs := make([]entity.RFIDLog, 0, 100)

	for i := 0; i < 100; i++ {
		day := p.now().AddDate(0, 0, -p.rnd.Intn(7))
		ts := time.Date(day.Year(), day.Month(), day.Day(),
			p.rnd.Intn(24), p.rnd.Intn(60), 0, 0, day.Location())
		logs = append(logs, entity.RFIDLog{
			ID:        i + 1,
			ProductID: mockProducts[p.rnd.Intn(5)].id,
			Location:  mockLocations[p.rnd.Intn(len(mockLocations))],
			Timestamp: ts.Format(time.RFC3339),
			ScanType:  scanTypes[p.rnd.Intn(len(scanTypes))],
		})
	}
	return logs
}

// SampleHeatmap emite un patrón muestreado de 24 h × 5 ubicaciones con más
// actividad en horario laboral (picos 9–10 y 14–16). Se usa cuando hasta el
// heatmap derivado de logs queda vacío.
func (p *Provider) SampleHeatmap() []entity.HeatmapCell {
	peakHours := map[int]bool{9: true, 10: true, 14: true, 15: true, 16: true}
	var cells []entity.HeatmapCell

	for _, location := range mockLocations {
		for hour := 0; hour < 24; hour++ {
			var count int
			if hour >= 8 && hour <= 18 {
				base := p.rnd.Intn(15) + 5 // 5–19 lecturas
				if peakHours[hour] {
					count = int(float64(base) * 1.5)
				} else {
					count = base
				}
			} else {
				count = p.rnd.Intn(5) // 0–4 fuera de horario
			}
			// solo celdas con actividad; la matriz densa la completa el agregador
			if count > 0 {
				cells = append(cells, entity.HeatmapCell{
					Location:      location,
					Hour:          hour,
					ActivityCount: count,
				})
			}
		}
	}
	return cells
}

// demandProfile parámetros de demanda por producto.
type demandProfile struct {
	id         string
	baseDemand float64
	volatility float64
	seasonal   float64
}

var demandProfiles = []demandProfile{
	{"P001", 25, 0.3, 1.0},
	{"P002", 18, 0.5, 1.2},
	{"P003", 35, 0.7, 0.8},
	{"P004", 12, 0.2, 1.1},
	{"P005", 28, 0.4, 0.9},
}

// DemandPredictions genera 5 productos × 30 días a partir de hoy. Los
// primeros 15 días llevan actual_demand (≥ 0, backfill); los 15 futuros no.
// La confianza queda en [0.6, 0.95] y no crece con el horizonte.
func (p *Provider) DemandPredictions() []entity.DemandPrediction {
	predictions := make([]entity.DemandPrediction, 0, len(demandProfiles)*30)

	for i := 0; i < 30; i++ {
		day := p.now().AddDate(0, 0, i)
		weekday := day.Weekday()
		weeklyMultiplier := 1.0
		if weekday == time.Saturday || weekday == time.Sunday {
			weeklyMultiplier = 0.7
		}

		for _, prof := range demandProfiles {
			variation := 1 + (p.rnd.Float64()-0.5)*prof.volatility
			predicted := math.Round(prof.baseDemand * prof.seasonal * weeklyMultiplier * variation)

			var actual *float64
			var confidence float64
			if i < 15 {
				accuracy := 0.9 + p.rnd.Float64()*0.2      // 90–110%
				noise := 1 + (p.rnd.Float64()-0.5)*0.3     // ruido de mercado
				observed := math.Round(predicted * accuracy * noise)
				observed = math.Max(0, observed)
				actual = &observed
				confidence = math.Max(0.7, 0.95-float64(i)*0.01)
			} else {
				confidence = math.Max(0.6, 0.8-float64(i-15)*0.01)
			}

			predictions = append(predictions, entity.DemandPrediction{
				ProductID:       prof.id,
				Date:            day.Format("2006-01-02"),
				PredictedDemand: predicted,
				ActualDemand:    actual,
				Confidence:      math.Round(confidence*100) / 100,
			})
		}
	}

	sort.Slice(predictions, func(a, b int) bool {
		return predictions[a].Date < predictions[b].Date
	})
	return predictions
}

// Sales genera 30 días × 5 productos de ventas diarias.
func (p *Provider) Sales() []entity.SalesEntry {
	sales := make([]entity.SalesEntry, 0, 5*30)

	for i := 0; i < 30; i++ {
		day := p.now().AddDate(0, 0, -i)
		for idx, prof := range demandProfiles {
			sales = append(sales, entity.SalesEntry{
				ID:        i*len(demandProfiles) + idx + 1,
				ProductID: prof.id,
				Month:     int(day.Month()),
				Year:      day.Year(),
				Sales:     p.rnd.Intn(30) + 5,
				Date:      day.Format("2006-01-02"),
			})
		}
	}
	return sales
}

// Trends genera 61 días consecutivos con patrón semanal: fines de semana más
// bajos, lunes cargado de reposiciones. Cumple el invariante
// stock_coverage_days = ⌈inventario / max(ventas, 1)⌉.
func (p *Provider) Trends() []entity.TrendPoint {
	const dayCount = 60

	baseInventory := 180.0
	trends := make([]entity.TrendPoint, 0, dayCount+1)

	for i := dayCount; i >= 0; i-- {
		day := p.now().AddDate(0, 0, -i)
		weekday := day.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday

		weeklyMultiplier := 1.0
		switch {
		case isWeekend:
			weeklyMultiplier = 0.6
		case weekday == time.Friday:
			weeklyMultiplier = 1.3
		}
		restockMultiplier := 1.0
		switch {
		case weekday == time.Monday:
			restockMultiplier = 2.5
		case isWeekend:
			restockMultiplier = 0.2
		}

		// tendencia estacional sobre la ventana de dos meses
		progress := float64(dayCount-i) / float64(dayCount)
		seasonal := 1 + math.Sin(progress*math.Pi*2)*0.2

		dailySales := int(math.Round(25 * weeklyMultiplier * seasonal * (0.8 + p.rnd.Float64()*0.4)))
		dailyRestocks := int(math.Round(2 * restockMultiplier * (0.5 + p.rnd.Float64())))

		// el inventario se agota con las ventas y sube con cada reposición
		change := float64(dailyRestocks*15 - dailySales)
		baseInventory = math.Max(50, baseInventory+change+(p.rnd.Float64()-0.5)*10)

		// más alertas cuanto más bajo el inventario
		ratio := baseInventory / 200
		alertProb := 0.1
		if ratio < 0.4 {
			alertProb = 0.8
		} else if ratio < 0.6 {
			alertProb = 0.4
		}
		dailyAlerts := 0
		if p.rnd.Float64() < alertProb {
			dailyAlerts = int(math.Round(3 * (1.5 - ratio)))
		}

		inventory := int(math.Round(baseInventory))
		turnover := 0.0
		if inventory > 0 {
			turnover = math.Round(float64(dailySales)/float64(inventory)*100) / 100
		}
		divisor := dailySales
		if divisor < 1 {
			divisor = 1
		}
		efficiency := 0.0
		if dailyRestocks > 0 {
			efficiency = math.Round(float64(dailySales)/float64(dailyRestocks)*100) / 100
		}

		trends = append(trends, entity.TrendPoint{
			Date:              day.Format("2006-01-02"),
			InventoryLevel:    inventory,
			Sales:             dailySales,
			Restocks:          dailyRestocks,
			Alerts:            dailyAlerts,
			InventoryTurnover: turnover,
			StockCoverageDays: int(math.Ceil(float64(inventory) / float64(divisor))),
			RestockEfficiency: efficiency,
			AlertSeverity:     entity.SeverityFor(dailyAlerts),
		})
	}

	sort.Slice(trends, func(a, b int) bool {
		return trends[a].Date < trends[b].Date
	})
	return trends
}

// Seed semilla por defecto en producción: nanosegundos actuales.
func Seed() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
