package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notion_client",
			Name:      "requests_total",
			Help:      "Requests dispatched to the API, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notion_client",
			Name:      "request_failures_total",
			Help:      "Requests that failed at the transport level.",
		},
		[]string{"operation"},
	)
)
