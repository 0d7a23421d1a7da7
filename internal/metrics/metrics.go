package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsInferredTotal counts per-document inference runs by outcome
	DocumentsInferredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "varlda_documents_inferred_total",
			Help: "Total number of per-document inference runs by outcome",
		},
		[]string{"status"}, // "converged", "maxiter"
	)

	// InferenceIterations measures coordinate-ascent sweeps per document
	InferenceIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "varlda_inference_iterations",
			Help:    "Coordinate-ascent sweeps performed per document",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	// DimensionErrorsTotal counts dimension mismatch errors by operation
	DimensionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "varlda_dimension_errors_total",
			Help: "Total number of dimension mismatch errors by operation",
		},
		[]string{"operation"}, // "new_model", "compatible"
	)
)
