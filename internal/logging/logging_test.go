package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gitlab.com/gitlab-org/labkit/correlation"
)

func TestLogRequestFields(t *testing.T) {
	hook := testlog.NewGlobal()

	req := httptest.NewRequest(http.MethodPost, "http://example.com/widgets?id=1", nil)
	req = req.WithContext(correlation.ContextWithCorrelation(req.Context(), "abc123"))

	LogRequest(req).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "hello", entry.Message)
	require.Equal(t, "abc123", entry.Data["correlation_id"])
	require.Equal(t, "example.com", entry.Data["host"])
	require.Equal(t, http.MethodPost, entry.Data["method"])
	require.Equal(t, "/widgets", entry.Data["path"])
}

func TestLogRequestWithoutRequest(t *testing.T) {
	hook := testlog.NewGlobal()

	LogRequest(nil).Warn("no request")

	require.NotNil(t, hook.LastEntry())
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestGetAccessLogger(t *testing.T) {
	tests := []struct {
		format   string
		standard bool
	}{
		{format: "json", standard: true},
		{format: "text", standard: false},
		{format: "", standard: false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			l, err := getAccessLogger(tt.format)
			require.NoError(t, err)

			if tt.standard {
				require.Same(t, logrus.StandardLogger(), l)
			} else {
				require.NotSame(t, logrus.StandardLogger(), l)
			}
		})
	}
}

func TestBasicAccessLoggerServesWrappedHandler(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	wrapped, err := BasicAccessLogger(handler, "json")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}
