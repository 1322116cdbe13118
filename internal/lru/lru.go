package lru

import (
	"time"

	"github.com/karlseguin/ccache/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// getsPerPromote is how many gets an item needs before it is moved to the
// front of the LRU list
const getsPerPromote = 64

// itemsToPruneDiv prunes 1/16 of the items when the cache is full
const itemsToPruneDiv = 16

// Cache holds file contents keyed by path, with hit/miss metrics.
type Cache struct {
	op                  string
	expiry              time.Duration
	cache               *ccache.Cache
	metricCachedEntries *prometheus.GaugeVec
	metricCacheRequests *prometheus.CounterVec
}

// New creates a cache of at most maxEntries items that expire after
// expiry. op labels the metrics.
func New(op string, maxEntries int64, expiry time.Duration, cachedEntriesMetric *prometheus.GaugeVec, cacheRequestsMetric *prometheus.CounterVec) *Cache {
	prune := uint32(maxEntries / itemsToPruneDiv)
	if prune == 0 {
		prune = 1
	}

	configuration := ccache.Configure()
	configuration.MaxSize(maxEntries)
	configuration.ItemsToPrune(prune)
	configuration.GetsPerPromote(getsPerPromote)
	configuration.OnDelete(func(*ccache.Item) {
		cachedEntriesMetric.WithLabelValues(op).Dec()
	})

	return &Cache{
		op:                  op,
		expiry:              expiry,
		cache:               ccache.New(configuration),
		metricCachedEntries: cachedEntriesMetric,
		metricCacheRequests: cacheRequestsMetric,
	}
}

// FindOrFetch returns the cached bytes for key. On a miss or an expired
// entry it calls fetch and caches the result; errors are not cached.
func (c *Cache) FindOrFetch(key string, fetch func() ([]byte, error)) ([]byte, error) {
	item := c.cache.Get(key)
	if item != nil && !item.Expired() {
		c.metricCacheRequests.WithLabelValues(c.op, "hit").Inc()
		return item.Value().([]byte), nil
	}

	value, err := fetch()
	if err != nil {
		c.metricCacheRequests.WithLabelValues(c.op, "error").Inc()
		return nil, err
	}

	// a replaced entry is decremented by OnDelete
	c.metricCacheRequests.WithLabelValues(c.op, "miss").Inc()
	c.metricCachedEntries.WithLabelValues(c.op).Inc()

	c.cache.Set(key, value, c.expiry)

	return value, nil
}

// Stop stops the cache's background worker.
func (c *Cache) Stop() {
	c.cache.Stop()
}
