package metrics

import "github.com/prometheus/client_golang/prometheus"

// Content and stats Prometheus metrics.
var (
	ContentWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_writes_total",
			Help:      "Component and page writes by operation and result",
		},
		[]string{"kind", "op", "result"}, // kind: component/page, result: ok/error
	)

	StatsRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_refresh_total",
			Help:      "Stats snapshot recomputations by trigger and result",
		},
		[]string{"trigger", "result"}, // trigger: initial/throttled/invalidated
	)

	StatsRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stats_refresh_duration_seconds",
			Help:      "Stats snapshot recomputation duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

var contentMetricsRegistered bool

// RegisterContentMetrics registers content and stats metrics. Must be called once from main.
func RegisterContentMetrics() {
	if contentMetricsRegistered {
		return
	}
	prometheus.MustRegister(ContentWritesTotal)
	prometheus.MustRegister(StatsRefreshTotal)
	prometheus.MustRegister(StatsRefreshDuration)
	contentMetricsRegistered = true
}

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
