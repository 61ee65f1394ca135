package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDeniedTotal запросы, остановленные access_gate, по роутам.
	HTTPRequestDeniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_denied_total",
			Help: "Total number of HTTP requests denied by an access gate",
		},
		[]string{"method", "route", "gate"},
	)
)
