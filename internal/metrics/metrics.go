// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "activity_calendar"

// Login outcomes.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginRateLimited        = "rate_limited"
	LoginMissingCredentials = "missing_credentials"
)

// LoginAttemptsTotal counts login attempts by outcome.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ActivitiesCreatedTotal counts stored activities by type.
var ActivitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_created_total",
		Help:      "Total number of activities created, labelled by type.",
	},
	[]string{"type"},
)

// ActivitiesDeletedTotal counts delete requests that reached the store.
var ActivitiesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_deleted_total",
		Help:      "Total number of activity delete operations.",
	},
)

// HTTPRequestsTotal counts served requests.
//   - route: chi route pattern (e.g. "/api/activities/{year_month}")
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, labelled by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
