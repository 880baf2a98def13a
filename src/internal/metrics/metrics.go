package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transaction_ms"

var TransfersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transfers_total",
		Help:      "Total number of registered transfers by persisted status",
	},
	[]string{"status"},
)

var accountServiceLatency = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "account_service_request_seconds",
		Help:      "Latency of execute-transfer calls to the account service",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

func ObserveAccountServiceCall(outcome string, started time.Time) {
	accountServiceLatency.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
