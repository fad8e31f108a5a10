package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookingapp_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cookingapp_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SequenceValuesIssued counts ids handed out per named sequence.
	SequenceValuesIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sequence_values_issued_total",
		Help: "Total number of sequence values issued",
	}, []string{"name"})

	// UploadedFilesTotal counts stored uploads by backend.
	UploadedFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookingapp_uploaded_files_total",
		Help: "Total number of uploaded files stored",
	}, []string{"store"})

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cookingapp_rate_limited_total",
		Help: "Total number of rate limited requests",
	}, []string{"limiter"})

	// EventPublishErrors counts interaction events that could not be published.
	EventPublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cookingapp_event_publish_errors_total",
		Help: "Total number of interaction events that failed to publish",
	})
)
