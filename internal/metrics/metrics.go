package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundscout",
		Name:      "provider_requests_total",
		Help:      "Total provider search calls by mode and result status.",
	}, []string{"mode", "status"})

	ProviderRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "soundscout",
		Name:      "provider_request_duration_seconds",
		Help:      "Provider search call duration in seconds.",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"mode"})

	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundscout",
		Name:      "cache_hits_total",
		Help:      "Total number of ephemeral search cache hits.",
	}, []string{"mode"})

	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundscout",
		Name:      "cache_misses_total",
		Help:      "Total number of ephemeral search cache misses.",
	}, []string{"mode"})

	ResultsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundscout",
		Name:      "results_total",
		Help:      "Total results produced by search path and kind.",
	}, []string{"path", "kind"})

	SkippedRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundscout",
		Name:      "skipped_records_total",
		Help:      "Provider records dropped by the normalizer, by reason.",
	}, []string{"reason"})

	StoreEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "soundscout",
		Name:      "store_entries",
		Help:      "Entries held by the persistent stores.",
	}, []string{"store"})

	StoreFlushErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "soundscout",
		Name:      "store_flush_errors_total",
		Help:      "Failed persistent store flushes.",
	}, []string{"store"})

	GazetteerTerms = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "soundscout",
		Name:      "gazetteer_terms",
		Help:      "Terms in the current gazetteer by category.",
	}, []string{"category"})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		ProviderRequestsTotal,
		ProviderRequestDuration,
		CacheHitsTotal,
		CacheMissesTotal,
		ResultsTotal,
		SkippedRecordsTotal,
		StoreEntries,
		StoreFlushErrorsTotal,
		GazetteerTerms,
	)
}
