package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/warehouse-analytics/internal/application/aggregate"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

func actual(v float64) *float64 { return &v }

// TestDemand_PrecisionMedia escenario literal: (p=100, a=90) y (p=50, a=55)
// promedian ((1−10/90)+(1−5/55))/2 · 100 ≈ 89.9%.
func TestDemand_PrecisionMedia(t *testing.T) {
	preds := []entity.DemandPrediction{
		{ProductID: "P001", Date: "2025-05-01", PredictedDemand: 100, ActualDemand: actual(90), Confidence: 0.9},
		{ProductID: "P001", Date: "2025-05-02", PredictedDemand: 50, ActualDemand: actual(55), Confidence: 0.88},
	}

	summary := aggregate.Demand(preds, "")

	require.False(t, summary.Accuracy.PredictionOnly)
	assert.Equal(t, 2, summary.Accuracy.ActualCount)
	assert.InDelta(t, 89.9, summary.Accuracy.MeanAccuracy, 0.001)
}

// TestDemand_SinObservaciones sin ninguna demanda real el resumen es
// "solo predicción", no un número de precisión.
func TestDemand_SinObservaciones(t *testing.T) {
	preds := []entity.DemandPrediction{
		{ProductID: "P001", Date: "2025-05-01", PredictedDemand: 30, Confidence: 0.8},
		{ProductID: "P002", Date: "2025-05-02", PredictedDemand: 12, Confidence: 0.75},
	}

	summary := aggregate.Demand(preds, "")

	assert.True(t, summary.Accuracy.PredictionOnly)
	assert.Equal(t, 0, summary.Accuracy.ActualCount)
	assert.Zero(t, summary.Accuracy.MeanAccuracy)
}

// TestDemand_ActualCeroSeOmiteDeLaMedia una entrada con real = 0 dejaría la
// fórmula indefinida: se omite de la media pero no del conteo ni de la serie.
func TestDemand_ActualCeroSeOmiteDeLaMedia(t *testing.T) {
	preds := []entity.DemandPrediction{
		{ProductID: "P001", Date: "2025-05-01", PredictedDemand: 10, ActualDemand: actual(0), Confidence: 0.9},
		{ProductID: "P001", Date: "2025-05-02", PredictedDemand: 100, ActualDemand: actual(90), Confidence: 0.9},
	}

	summary := aggregate.Demand(preds, "")

	assert.Equal(t, 2, summary.Accuracy.ActualCount)
	assert.InDelta(t, 88.9, summary.Accuracy.MeanAccuracy, 0.001,
		"la media se computa solo sobre la entrada con real > 0")
	assert.Len(t, summary.Predictions, 2, "la serie conserva ambas entradas")
}

// TestDemand_FiltroYOrden filtra por producto y ordena por fecha ascendente.
func TestDemand_FiltroYOrden(t *testing.T) {
	preds := []entity.DemandPrediction{
		{ProductID: "P002", Date: "2025-05-03", PredictedDemand: 20, Confidence: 0.8},
		{ProductID: "P001", Date: "2025-05-02", PredictedDemand: 25, Confidence: 0.8},
		{ProductID: "P001", Date: "2025-05-01", PredictedDemand: 30, Confidence: 0.8},
	}

	summary := aggregate.Demand(preds, "P001")

	require.Len(t, summary.Predictions, 2)
	assert.Equal(t, "2025-05-01", summary.Predictions[0].Date)
	assert.Equal(t, "2025-05-02", summary.Predictions[1].Date)
	for _, p := range summary.Predictions {
		assert.Equal(t, "P001", p.ProductID)
	}
}

// TestDemand_OrdenNoDecreciente propiedad general: la salida nunca decrece
// en fecha, venga como venga la entrada.
func TestDemand_OrdenNoDecreciente(t *testing.T) {
	preds := []entity.DemandPrediction{
		{ProductID: "P001", Date: "2025-05-09", PredictedDemand: 1, Confidence: 0.7},
		{ProductID: "P001", Date: "2025-05-01", PredictedDemand: 2, Confidence: 0.7},
		{ProductID: "P001", Date: "2025-05-05", PredictedDemand: 3, Confidence: 0.7},
		{ProductID: "P001", Date: "2025-05-05", PredictedDemand: 4, Confidence: 0.7},
	}

	summary := aggregate.Demand(preds, "P001")

	for i := 1; i < len(summary.Predictions); i++ {
		assert.LessOrEqual(t, summary.Predictions[i-1].Date, summary.Predictions[i].Date)
	}
}
