package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SubscribersGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "ws_subscribers",
		Help: "Number of active websocket subscribers",
	},
)
