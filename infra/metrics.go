package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grocery_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "grocery_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocery_ai_requests_total",
			Help: "Outbound completion requests by outcome",
		},
		[]string{"outcome"},
	)

	AIRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grocery_ai_request_duration_seconds",
			Help:    "Outbound completion request latency in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	RecipeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grocery_recipe_cache_hits_total",
			Help: "Recipe suggestions served from the in-memory cache",
		},
	)
)
