// Package aggregate calcula los artefactos derivados que consumen los widgets
// del dashboard: inventario deduplicado con buckets de stock, matriz de
// actividad RFID, resumen de precisión de demanda, roll-up de tendencias y
// métricas de cabecera.
package aggregate

import (
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// StatusBuckets conteo de productos por estado de stock.
type StatusBuckets struct {
	Critical int `json:"critical"`
	Low      int `json:"low"`
	Normal   int `json:"normal"`
}

// InventorySummary salida del agregador de inventario: como mucho un registro
// por product_id (el de last_updated más reciente), los buckets y el stock
// total sobre los productos únicos.
type InventorySummary struct {
	Items      []entity.InventoryRecord `json:"items"`
	Buckets    StatusBuckets            `json:"buckets"`
	TotalStock int                      `json:"total_stock"`
}

// Inventory deduplica a lo último-por-producto y clasifica cada registro.
//
// Un registro sustituye al acumulado solo si su last_updated es estrictamente
// más reciente; en empate se queda el primero encontrado (estable). El orden
// de salida preserva la primera aparición de cada product_id.
func Inventory(records []entity.InventoryRecord) InventorySummary {
	items := make([]entity.InventoryRecord, 0, len(records))
	index := make(map[string]int, len(records))

	for _, r := range records {
		pos, seen := index[r.ProductID]
		if !seen {
			index[r.ProductID] = len(items)
			items = append(items, r)
			continue
		}
		current, currentOK := entity.ParseTimestamp(items[pos].LastUpdated)
		candidate, candidateOK := entity.ParseTimestamp(r.LastUpdated)
		if candidateOK && currentOK && candidate.After(current) {
			items[pos] = r
		}
	}

	summary := InventorySummary{Items: items}
	for _, item := range items {
		summary.TotalStock += item.Stock
		switch item.Status() {
		case entity.StockCritical:
			summary.Buckets.Critical++
		case entity.StockLow:
			summary.Buckets.Low++
		default:
			summary.Buckets.Normal++
		}
	}
	return summary
}
