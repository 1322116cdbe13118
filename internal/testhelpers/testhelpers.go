package testhelpers

import (
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// AssertHTTP404 asserts handler answers method and url with the 404 HTML page
func AssertHTTP404(t *testing.T, handler http.Handler, method, url string) {
	t.Helper()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(method, url, nil))

	require.Equal(t, http.StatusNotFound, w.Code, "HTTP status")

	contentType, _, _ := mime.ParseMediaType(w.Header().Get("Content-Type"))
	require.Equal(t, "text/html", contentType, "Content-Type")
}

// AssertLogContains checks that wantLogEntry is contained in at least one of the log entries
func AssertLogContains(t *testing.T, wantLogEntry string, entries []*logrus.Entry) {
	t.Helper()

	if wantLogEntry != "" {
		messages := make([]string, len(entries))
		for k, entry := range entries {
			messages[k] = entry.Message
		}

		require.Contains(t, messages, wantLogEntry)
	}
}

// WriteFiles creates files below dir. Keys are slash separated relative
// paths, parent directories are created as needed.
func WriteFiles(t testing.TB, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// TmpDir returns a fresh temporary directory with symlinks resolved
func TmpDir(t testing.TB) string {
	t.Helper()

	// On some systems `/tmp` can be a symlink
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}
