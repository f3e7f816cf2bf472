package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outgoing-call metrics live next to the client that emits them; the api
// layer only ever sees them through the /metrics endpoint.

// requestsTotal counts outgoing calls to the facility backend.
// Labels:
//   - resource: first API path segment ("token", "rooms", "equipment", ...)
//   - method:   HTTP method
//   - code:     response status code, or "error" when no response arrived
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "console",
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the facility backend.",
	},
	[]string{"resource", "method", "code"},
)

// requestDuration measures backend round-trip time per resource.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "console",
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the facility backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)
