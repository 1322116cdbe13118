package chainrouter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Request is the request descriptor handed to every handler of a chain.
// Body holds the fully buffered request body.
type Request struct {
	Method string
	Path   string
	Body   []byte

	// Raw is the underlying request, for headers, query and context.
	Raw *http.Request

	initOnce  sync.Once
	closeOnce sync.Once
	exhausted chan struct{}
}

func newRequest(r *http.Request) (*Request, error) {
	req := &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Raw:    r,
	}

	if r.Body == nil || r.Body == http.NoBody {
		return req, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	req.Body = body

	return req, nil
}

// Context returns the context of the underlying request.
func (r *Request) Context() context.Context {
	if r.Raw == nil {
		return context.Background()
	}

	return r.Raw.Context()
}

// Exhausted is closed once the chain has advanced past its last handler,
// that is when the last handler called next.
func (r *Request) Exhausted() <-chan struct{} {
	return r.exhaustedChan()
}

func (r *Request) exhaustedChan() chan struct{} {
	r.initOnce.Do(func() {
		r.exhausted = make(chan struct{})
	})

	return r.exhausted
}

func (r *Request) markExhausted() {
	r.closeOnce.Do(func() {
		close(r.exhaustedChan())
	})
}
