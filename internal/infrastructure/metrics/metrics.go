package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsdesk",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "analytics_cache_requests_total",
		Help:      "Analytics cache lookups by payload and result.",
	}, []string{"payload", "result"})

	ActivityLogFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "activity_log_write_failures_total",
		Help:      "Activity log entries dropped after a failed write.",
	})
)

func CacheHit(payload string)  { CacheRequests.WithLabelValues(payload, "hit").Inc() }
func CacheMiss(payload string) { CacheRequests.WithLabelValues(payload, "miss").Inc() }
