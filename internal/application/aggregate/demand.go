package aggregate

import (
	"math"
	"sort"

	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// AccuracySummary resumen de precisión sobre las predicciones con demanda
// real presente. Si ninguna entrada trae actual_demand, PredictionOnly es
// true y MeanAccuracy no es significativo.
type AccuracySummary struct {
	ActualCount    int     `json:"actual_count"`
	MeanAccuracy   float64 `json:"mean_accuracy"` // porcentaje, 1 decimal
	PredictionOnly bool    `json:"prediction_only"`
}

// DemandSummary salida del agregador de demanda: la serie filtrada y ordenada
// por fecha ascendente, más el resumen de precisión.
type DemandSummary struct {
	Predictions []entity.DemandPrediction `json:"predictions"`
	Accuracy    AccuracySummary           `json:"accuracy"`
}

// Demand filtra opcionalmente por producto (productID vacío = todos), ordena
// por fecha ascendente y computa la precisión media como
//
//	accuracy = (1 − |predicho − real| / real) · 100
//
// promediada aritméticamente sobre las entradas con real presente. Una
// entrada con real = 0 dejaría la fórmula indefinida: se omite de la media
// (no de la serie ni del conteo).
func Demand(preds []entity.DemandPrediction, productID string) DemandSummary {
	filtered := make([]entity.DemandPrediction, 0, len(preds))
	for _, p := range preds {
		if productID != "" && p.ProductID != productID {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(a, b int) bool {
		return filtered[a].Date < filtered[b].Date
	})

	var (
		actualCount int
		sum         float64
		contributed int
	)
	for _, p := range filtered {
		if p.ActualDemand == nil {
			continue
		}
		actualCount++
		actual := *p.ActualDemand
		if actual == 0 {
			continue
		}
		sum += (1 - math.Abs(p.PredictedDemand-actual)/actual) * 100
		contributed++
	}

	accuracy := AccuracySummary{ActualCount: actualCount}
	if actualCount == 0 {
		accuracy.PredictionOnly = true
	} else if contributed > 0 {
		accuracy.MeanAccuracy = math.Round(sum/float64(contributed)*10) / 10
	}

	return DemandSummary{Predictions: filtered, Accuracy: accuracy}
}
