package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "starwars",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "starwars",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	FavoriteOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "starwars",
			Subsystem: "favorites",
			Name:      "operations_total",
			Help:      "Favorite add/remove calls by kind and outcome",
		},
		[]string{"kind", "op", "outcome"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "starwars",
			Subsystem: "ratelimit",
			Name:      "rejections_total",
			Help:      "Requests rejected by the write rate limiter",
		},
	)
)
