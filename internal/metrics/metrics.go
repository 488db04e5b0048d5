// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathfinder_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pathfinder_recommendations_total",
			Help: "Total number of recommendation requests answered",
		},
	)

	RoadmapsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pathfinder_roadmaps_generated_total",
			Help: "Total number of roadmaps synthesized",
		},
	)

	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_tasks_completed_total",
			Help: "Total number of roadmap tasks marked done, by task type",
		},
		[]string{"type"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfinder_rate_limited_total",
			Help: "Requests rejected by the rate limiter, by route",
		},
		[]string{"route"},
	)
)
