package aggregate

import (
	"sort"

	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// NoDataLocation valor de most_active_location cuando no hay actividad.
const NoDataLocation = "No Data"

// HeatmapSummary salida del agregador RFID: matriz densa ubicación × hora y
// los estadísticos que muestran las tarjetas del widget.
type HeatmapSummary struct {
	Locations []string `json:"locations"` // únicas, orden lexicográfico
	Hours     []int    `json:"hours"`     // siempre [0..23]
	// Matrix[i][h] = actividad de Locations[i] a la hora h; 0 en celdas vacías.
	Matrix             [][]int `json:"matrix"`
	MaxActivity        int     `json:"max_activity"`
	TotalActivity      int     `json:"total_activity"`
	PeakHour           int     `json:"peak_hour"`
	MostActiveLocation string  `json:"most_active_location"`
}

// CellsFromLogs agrupa lecturas crudas por (ubicación, hora del día) en
// celdas de conteo. Las lecturas con timestamp no parseable se descartan.
func CellsFromLogs(logs []entity.RFIDLog) []entity.HeatmapCell {
	type key struct {
		location string
		hour     int
	}
	counts := make(map[key]int)
	order := make([]key, 0)

	for _, l := range logs {
		hour, ok := entity.HourOf(l.Timestamp)
		if !ok {
			continue
		}
		k := key{l.Location, hour}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	cells := make([]entity.HeatmapCell, 0, len(order))
	for _, k := range order {
		cells = append(cells, entity.HeatmapCell{
			Location:      k.location,
			Hour:          k.hour,
			ActivityCount: counts[k],
		})
	}
	return cells
}

// Heatmap construye la matriz densa |ubicaciones| × 24 y los estadísticos.
//
// Invariante de completitud: todo par (ubicación, hora) con hora ∈ [0,23]
// tiene celda definida (0 si no hubo actividad), de modo que
// Σ celdas = Σ activity_count de la entrada.
//
// Desempates: peak_hour se queda con la hora más baja y most_active_location
// con la ubicación lexicográficamente menor.
func Heatmap(cells []entity.HeatmapCell) HeatmapSummary {
	hours := make([]int, 24)
	for h := range hours {
		hours[h] = h
	}

	summary := HeatmapSummary{
		Locations:          []string{},
		Hours:              hours,
		Matrix:             [][]int{},
		MostActiveLocation: NoDataLocation,
	}
	if len(cells) == 0 {
		return summary
	}

	seen := make(map[string]bool)
	for _, c := range cells {
		seen[c.Location] = true
	}
	locations := make([]string, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	locIndex := make(map[string]int, len(locations))
	matrix := make([][]int, len(locations))
	for i, loc := range locations {
		locIndex[loc] = i
		matrix[i] = make([]int, 24)
	}

	byHour := make([]int, 24)
	byLocation := make([]int, len(locations))
	for _, c := range cells {
		i := locIndex[c.Location]
		matrix[i][c.Hour] += c.ActivityCount
		byHour[c.Hour] += c.ActivityCount
		byLocation[i] += c.ActivityCount
		summary.TotalActivity += c.ActivityCount
		if matrix[i][c.Hour] > summary.MaxActivity {
			summary.MaxActivity = matrix[i][c.Hour]
		}
	}

	peakHour := 0
	for h, total := range byHour {
		if total > byHour[peakHour] {
			peakHour = h
		}
	}
	mostActive := 0
	for i, total := range byLocation {
		if total > byLocation[mostActive] {
			mostActive = i
		}
	}

	summary.Locations = locations
	summary.Matrix = matrix
	summary.PeakHour = peakHour
	summary.MostActiveLocation = locations[mostActive]
	return summary
}
