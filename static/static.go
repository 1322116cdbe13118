// Package static maps a directory tree onto GET routes of a
// chainrouter.Router, one route per regular file.
//
// The tree is walked once when the router is built. Files added later are
// not served; files removed later answer with a 404 page.
package static

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gitlab.com/gitlab-org/labkit/log"

	"gitlab.com/gitlab-org/chainrouter"
	"gitlab.com/gitlab-org/chainrouter/internal/httperrors"
	"gitlab.com/gitlab-org/chainrouter/internal/logging"
	"gitlab.com/gitlab-org/chainrouter/internal/lru"
	"gitlab.com/gitlab-org/chainrouter/internal/mimetypes"
	"gitlab.com/gitlab-org/chainrouter/metrics"
)

// DefaultSeparator joins path segments of generated routes.
const DefaultSeparator = "/"

var (
	errNotDirectory   = errors.New("not a directory")
	errEmptySeparator = errors.New("route separator must not be empty")
)

// Option configures New.
type Option func(*mapper)

// WithSeparator sets the separator used between route segments.
func WithSeparator(sep string) Option {
	return func(m *mapper) {
		m.separator = sep
	}
}

// WithExtendedTypes resolves extensions missing from the built-in table
// with the full MIME database before falling back to text/plain.
func WithExtendedTypes() Option {
	return func(m *mapper) {
		m.contentType = mimetypes.ExtendedByName
	}
}

// WithCache keeps up to maxEntries file contents in memory for expiry.
func WithCache(maxEntries int64, expiry time.Duration) Option {
	return func(m *mapper) {
		m.cache = lru.New("static", maxEntries, expiry, metrics.StaticCachedEntries, metrics.StaticCacheRequests)
	}
}

type mapper struct {
	separator   string
	contentType func(name string) string
	cache       *lru.Cache
}

// New walks root and returns a Router with a GET route per regular file.
// The route of root/css/site.css is "/css/site.css" with the default
// separator.
func New(root string, opts ...Option) (*chainrouter.Router, error) {
	m := &mapper{
		separator:   DefaultSeparator,
		contentType: mimetypes.ByName,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.separator == "" {
		return nil, errEmptySeparator
	}

	files, err := walk(root)
	if err != nil {
		return nil, err
	}

	r := chainrouter.New()
	for _, f := range files {
		r.Get(routePath(f.rel, m.separator), m.fileHandler(f))
	}

	metrics.StaticFilesMapped.Add(float64(len(files)))
	log.WithFields(log.Fields{
		"root":  root,
		"files": len(files),
	}).Info("mapped static directory")

	return r, nil
}

func (m *mapper) fileHandler(f file) chainrouter.Handler {
	contentType := m.contentType(f.rel)

	return func(req *chainrouter.Request, res *chainrouter.Response, next chainrouter.Next) {
		content, err := m.read(f.abs)
		if err != nil {
			serveReadError(req, res, err)
			return
		}

		metrics.StaticFileSize.Observe(float64(len(content)))

		res.SetHeader("Content-Type", contentType)
		if err := res.Send(content); err != nil {
			logging.LogRequest(req.Raw).WithError(err).Warn("could not write static file")
		}
	}
}

func (m *mapper) read(path string) ([]byte, error) {
	if m.cache == nil {
		return os.ReadFile(path)
	}

	return m.cache.FindOrFetch(path, func() ([]byte, error) {
		return os.ReadFile(path)
	})
}

func serveReadError(req *chainrouter.Request, res *chainrouter.Response, err error) {
	defer res.End()

	if errors.Is(err, fs.ErrNotExist) {
		metrics.StaticReadErrors.WithLabelValues("not_found").Inc()
		httperrors.Serve404(res)
		return
	}

	metrics.StaticReadErrors.WithLabelValues("read").Inc()
	httperrors.Serve500WithRequest(res, req.Raw, "could not read static file", err)
}
