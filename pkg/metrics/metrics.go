// Package metrics expone los contadores Prometheus de la capa de datos.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshCycles ciclos de refresco completados, por resultado
	// ("success" | "aggregation_error").
	RefreshCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "refresh_cycles_total",
		Help: "Total de ciclos de refresco ejecutados, por resultado",
	}, []string{"result"})

	// CycleDuration duración de un ciclo completo fetch→aggregate→publish.
	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "refresh_cycle_duration_seconds",
		Help:    "Duración del ciclo de refresco",
		Buckets: prometheus.DefBuckets,
	})

	// EndpointFallbacks sustituciones silenciosas por datos mock, por endpoint.
	EndpointFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_fallbacks_total",
		Help: "Fallos de endpoint sustituidos por el proveedor mock",
	}, []string{"endpoint"})

	// SnapshotRecords tamaño del último snapshot publicado, por dataset.
	SnapshotRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "snapshot_records",
		Help: "Registros del último snapshot publicado, por dataset",
	}, []string{"dataset"})
)
