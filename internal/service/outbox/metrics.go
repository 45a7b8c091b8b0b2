package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_published_total",
			Help: "Total number of outbox events published to Kafka",
		},
	)

	FailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outbox_failed_total",
			Help: "Total number of outbox events that failed to publish",
		},
	)
)
