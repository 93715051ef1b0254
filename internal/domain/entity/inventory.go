package entity

// InventoryRecord es una instantánea de stock de un producto en una ubicación.
// El feed crudo puede traer varias por product_id (una por día); la capa de
// agregación expone como mucho una, la de last_updated más reciente.
type InventoryRecord struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Stock        int    `json:"stock"`
	MinThreshold int    `json:"min_threshold"`
	Location     string `json:"location"`
	LastUpdated  string `json:"last_updated"`
}

// StockStatus clasifica el nivel de stock frente al umbral mínimo.
type StockStatus string

const (
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
	StockNormal   StockStatus = "normal"
)

// DefaultMinThreshold umbral usado cuando el registro no trae min_threshold.
const DefaultMinThreshold = 20

// StatusFor aplica la regla de clasificación:
//
//	stock < 0.5·umbral  → critical   (desigualdad estricta: 0.5·umbral exacto es low)
//	stock < umbral      → low
//	resto               → normal
func StatusFor(stock, threshold int) StockStatus {
	if threshold <= 0 {
		threshold = DefaultMinThreshold
	}
	if float64(stock) < 0.5*float64(threshold) {
		return StockCritical
	}
	if stock < threshold {
		return StockLow
	}
	return StockNormal
}

// Status clasifica el registro usando su propio umbral (o el default si falta).
func (r InventoryRecord) Status() StockStatus {
	return StatusFor(r.Stock, r.MinThreshold)
}
