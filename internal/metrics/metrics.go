package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the personalized recommendations handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of personalized recommendation requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Cache hits for finished recommendation lists
	RecommendCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cache_hits_total",
		Help: "Total number of recommendation cache hits",
	})

	// Per-category scorer failures that degraded to an empty list
	ScorerFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_scorer_failures_total",
		Help: "Total number of category scorer failures",
	}, []string{"category"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendCacheHits,
		ScorerFailures,
	)
}
