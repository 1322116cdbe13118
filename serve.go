package chainrouter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"gitlab.com/gitlab-org/chainrouter/internal/httperrors"
	"gitlab.com/gitlab-org/chainrouter/internal/logging"
	"gitlab.com/gitlab-org/chainrouter/metrics"
)

// DefaultShutdownTimeout bounds the graceful shutdown done by Listen.
const DefaultShutdownTimeout = 30 * time.Second

// ServeHTTP buffers the request body, resolves the chain and runs it. If
// the chain returns without ending the response, ServeHTTP waits until a
// resumed handler ends it or the request context is done. An empty chain
// does not produce a response of its own.
func (r *Router) ServeHTTP(w http.ResponseWriter, hr *http.Request) {
	req, err := newRequest(hr)
	if err != nil {
		logging.LogRequest(hr).WithError(err).Error("could not buffer request body")
		httperrors.Serve400(w)
		return
	}

	res := newResponse(w, hr)
	defer res.detach()

	chain := r.Stack(req.Method, req.Path)
	metrics.ChainLength.Observe(float64(len(chain)))
	if len(chain) == 0 {
		metrics.UnmatchedRequests.Inc()
	}

	chain.Run(req, res)

	select {
	case <-res.Done():
	case <-hr.Context().Done():
		metrics.AbandonedRequests.Inc()
		logging.LogRequest(hr).Debug("request context done before the response ended")
	}
}

// Listen serves r on addr until ctx is done. onReady, if set, is called
// once the listener is bound.
func (r *Router) Listen(ctx context.Context, addr string, onReady func(net.Addr)) error {
	server := &http.Server{Addr: addr, Handler: r}

	return ListenAndServe(ctx, server, DefaultShutdownTimeout, onReady)
}

// ListenAndServe binds server.Addr and serves until ctx is done, then
// shuts the server down, waiting at most shutdownTimeout for in-flight
// requests. Request contexts derive from ctx unless server.BaseContext is
// set, so requests waiting for a response end are released on shutdown.
func ListenAndServe(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, onReady func(net.Addr)) error {
	l, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", server.Addr, err)
	}

	if server.BaseContext == nil {
		server.BaseContext = func(net.Listener) context.Context { return ctx }
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(l)
	}()

	if onReady != nil {
		onReady(l.Addr())
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
