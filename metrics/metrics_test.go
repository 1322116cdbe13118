package metrics

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsVectorsCanBeScraped(t *testing.T) {
	reg := prometheus.NewRegistry()

	// vectors are only exported once a label value was used
	reg.MustRegister(
		StaticReadErrors,
		StaticCachedEntries,
		StaticCacheRequests,
	)

	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	testServer := httptest.NewServer(handler)
	defer testServer.Close()

	StaticReadErrors.WithLabelValues("not_found").Inc()
	StaticCachedEntries.WithLabelValues("static").Inc()
	StaticCacheRequests.WithLabelValues("static", "hit").Inc()

	c, err := StaticCacheRequests.GetMetricWithLabelValues("static", "hit")
	require.NoError(t, err)
	require.Equal(t, float64(1), testutil.ToFloat64(c))

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, metricFamilies, 3)

	res, err := http.Get(testServer.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := ioutil.ReadAll(res.Body)

	require.Contains(t, string(body), `chainrouter_static_read_errors_total{reason="not_found"}`)
	require.Contains(t, string(body), `chainrouter_static_cached_entries{op="static"}`)
	require.Contains(t, string(body), `chainrouter_static_cache_requests_total{cache="hit",op="static"}`)
}

func TestCountersAreRegisteredGlobally(t *testing.T) {
	before := testutil.ToFloat64(UnmatchedRequests)
	UnmatchedRequests.Inc()
	require.Equal(t, before+1, testutil.ToFloat64(UnmatchedRequests))

	require.Error(t, prometheus.Register(ChainLength), "already registered by init")
}
