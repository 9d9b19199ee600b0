package generate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	barcodesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bargo_barcodes_generated_total",
			Help: "Total number of barcodes generated",
		},
		[]string{"format"},
	)

	generateFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bargo_generate_failures_total",
			Help: "Total number of failed generation attempts",
		},
		[]string{"format"},
	)

	generateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bargo_generate_duration_seconds",
			Help:    "Barcode generation duration in seconds",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"format"},
	)
)
