package access_gate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AccessGateDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "access_gate_denied_total",
		Help: "Total number of requests rejected by access gates",
	},
	[]string{"gate", "reason"},
)
