package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bargo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bargo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bargo_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Encode API metrics
	encodeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bargo_encode_requests_total",
			Help: "Total number of encode API requests",
		},
		[]string{"format", "status"}, // status: success, error
	)

	encodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bargo_encode_request_duration_seconds",
			Help:    "Encode request processing duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"format"},
	)

	patternModules = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bargo_encode_pattern_modules",
			Help:    "Number of modules in encoded bar patterns",
			Buckets: []float64{25, 50, 100, 150, 200, 300, 500},
		},
		[]string{"format"},
	)

	// Rate limiting metrics
	rateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bargo_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bargo_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	websocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bargo_websocket_messages_total",
			Help: "Total number of WebSocket messages",
		},
		[]string{"direction"}, // direction: sent, received
	)
)
