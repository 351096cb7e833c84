package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the Prometheus metrics for the server.
type serverMetrics struct {
	reconcileTotal    prometheus.Counter
	reconcileDuration prometheus.Histogram
	patchOpsTotal     prometheus.Counter
	eventsTotal       *prometheus.CounterVec
	activeSessions    prometheus.Gauge
	wsErrors          *prometheus.CounterVec
}

// Metrics register against the default registry once, no matter how
// many servers a process runs.
var (
	globalMetrics     *serverMetrics
	globalMetricsOnce sync.Once
)

func getMetrics() *serverMetrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = initMetrics(prometheus.DefaultRegisterer)
	})
	return globalMetrics
}

func initMetrics(reg prometheus.Registerer) *serverMetrics {
	factory := promauto.With(reg)

	return &serverMetrics{
		reconcileTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "reconcile_total",
			Help:      "Total number of reconcile passes",
		}),

		reconcileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Name:      "reconcile_duration_seconds",
			Help:      "Reconcile pass duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		patchOpsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "patch_ops_total",
			Help:      "Total number of patch ops sent to clients",
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "events_total",
			Help:      "Total number of client events processed",
		}, []string{"type", "status"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "weft",
			Name:      "active_sessions",
			Help:      "Number of active WebSocket sessions",
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Name:      "websocket_errors_total",
			Help:      "Total number of WebSocket errors",
		}, []string{"kind"}),
	}
}
