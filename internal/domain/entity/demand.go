package entity

// DemandPrediction es una predicción de demanda diaria por producto.
// ActualDemand nulo indica una fecha futura sin observación; cuando está
// presente es el valor real ya observado (backfill).
type DemandPrediction struct {
	ProductID       string   `json:"product_id"`
	Date            string   `json:"date"` // YYYY-MM-DD
	PredictedDemand float64  `json:"predicted_demand"`
	ActualDemand    *float64 `json:"actual_demand,omitempty"`
	Confidence      float64  `json:"confidence"` // [0,1]
}
