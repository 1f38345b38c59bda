package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "readlater_client",
			Name:      "requests_total",
			Help:      "Endpoint calls by outcome (ok, transport, decode, encode, protocol).",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "readlater_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of endpoint calls, including decoding.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	actionsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "readlater_client",
			Name:      "actions_submitted_total",
			Help:      "Actions accepted in a successful send, by action name.",
		},
		[]string{"action"},
	)
)
