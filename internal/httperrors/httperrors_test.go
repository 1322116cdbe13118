package httperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var testingContent = content{
	http.StatusNotFound,
	"Title <b>",
	"Header test",
	"<p>detail text</p>",
}

func TestGenerateErrorHTML(t *testing.T) {
	actual := generateErrorHTML(testingContent)
	require.Contains(t, actual, "Title &lt;b&gt;")
	require.Contains(t, actual, "404")
	require.Contains(t, actual, testingContent.header)
	require.Contains(t, actual, testingContent.detail)
}

func TestServeErrorPages(t *testing.T) {
	tests := []struct {
		name    string
		serve   func(http.ResponseWriter)
		content content
	}{
		{name: "400", serve: Serve400, content: content400},
		{name: "404", serve: Serve404, content: content404},
		{name: "500", serve: Serve500, content: content500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.serve(w)

			require.Equal(t, tt.content.status, w.Code)
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			require.Contains(t, w.Body.String(), tt.content.header)
		})
	}
}

func TestServe500WithRequestLogsReason(t *testing.T) {
	hook := testlog.NewGlobal()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/broken", nil)
	Serve500WithRequest(w, r, "reading file", errors.New("disk on fire"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, hook.LastEntry())
	require.Equal(t, "reading file", hook.LastEntry().Message)
	require.Equal(t, "/broken", hook.LastEntry().Data["path"])
}
