package metrics

import "github.com/prometheus/client_golang/prometheus"

// Writing assistant Prometheus metrics.
var (
	AssistantRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_requests_total",
			Help:      "Total number of writing assistant requests",
		},
		[]string{"model", "status"},
	)

	AssistantRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assistant_request_duration_seconds",
			Help:      "Writing assistant request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	AssistantTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_tokens_total",
			Help:      "Total writing assistant tokens consumed",
		},
		[]string{"model", "type"}, // type: prompt/completion
	)

	AssistantCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_cache_total",
			Help:      "Excerpt suggestion cache lookups",
		},
		[]string{"result"}, // hit/miss
	)
)

var assistantMetricsRegistered bool

// RegisterAssistantMetrics registers writing assistant metrics. Must be called once from main.
func RegisterAssistantMetrics() {
	if assistantMetricsRegistered {
		return
	}
	prometheus.MustRegister(AssistantRequestsTotal)
	prometheus.MustRegister(AssistantRequestDuration)
	prometheus.MustRegister(AssistantTokensTotal)
	prometheus.MustRegister(AssistantCacheTotal)
	assistantMetricsRegistered = true
}
