package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ChainLength observes how many handlers were resolved for a request
	ChainLength = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chainrouter_chain_length",
		Help:    "The number of handlers resolved for a request",
		Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12, 16},
	})

	// UnmatchedRequests counts requests that resolved to an empty chain
	UnmatchedRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chainrouter_unmatched_requests_total",
		Help: "The total number of requests for which no handler was registered",
	})

	// AbandonedRequests counts requests whose context ended before the response
	AbandonedRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chainrouter_abandoned_requests_total",
		Help: "The total number of requests whose context was done before the response ended",
	})

	// StaticFilesMapped is the number of files registered as static routes
	StaticFilesMapped = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chainrouter_static_files_mapped",
		Help: "The number of files registered as static GET routes",
	})

	// StaticFileSize observes the size of served static files
	StaticFileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chainrouter_static_file_size_bytes",
		Help:    "The size in bytes of static files served",
		Buckets: prometheus.ExponentialBuckets(256, 4, 10),
	})

	// StaticReadErrors counts failed reads of mapped static files, by reason
	StaticReadErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chainrouter_static_read_errors_total",
		Help: "The total number of static file reads that failed",
	}, []string{"reason"})

	// StaticCachedEntries is the number of entries in the static content cache
	StaticCachedEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "chainrouter_static_cached_entries",
		Help: "The number of entries in the static content cache",
	}, []string{"op"})

	// StaticCacheRequests counts static content cache lookups by result
	StaticCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chainrouter_static_cache_requests_total",
		Help: "The number of static content cache lookups",
	}, []string{"op", "cache"})
)

func init() {
	prometheus.MustRegister(ChainLength)
	prometheus.MustRegister(UnmatchedRequests)
	prometheus.MustRegister(AbandonedRequests)
	prometheus.MustRegister(StaticFilesMapped)
	prometheus.MustRegister(StaticFileSize)
	prometheus.MustRegister(StaticReadErrors)
	prometheus.MustRegister(StaticCachedEntries)
	prometheus.MustRegister(StaticCacheRequests)
}
