package main

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/log"
	labmetrics "gitlab.com/gitlab-org/labkit/metrics"
	"golang.org/x/sync/errgroup"

	"gitlab.com/gitlab-org/chainrouter"
	"gitlab.com/gitlab-org/chainrouter/internal/config"
	"gitlab.com/gitlab-org/chainrouter/internal/logging"
	"gitlab.com/gitlab-org/chainrouter/internal/middleware"
	"gitlab.com/gitlab-org/chainrouter/static"
)

var (
	corsHandler = cors.New(cors.Options{AllowedMethods: []string{http.MethodGet, http.MethodHead}})

	// registers its collectors once per process
	httpMetrics = labmetrics.NewHandlerFactory(labmetrics.WithNamespace("chainrouter"))
)

// buildRouter installs the 404 fallback and custom headers as global
// middleware, mounts the static directory under the configured prefix and
// adds the status route.
func buildRouter(cfg *config.Config) (*chainrouter.Router, error) {
	headers, err := middleware.ParseHeaderString(cfg.General.CustomHeaders)
	if err != nil {
		return nil, err
	}

	opts := []static.Option{static.WithSeparator(cfg.Static.RouteSeparator)}
	if cfg.Static.ExtendedMIMETypes {
		opts = append(opts, static.WithExtendedTypes())
	}
	if cfg.Cache.MaxEntries > 0 {
		opts = append(opts, static.WithCache(cfg.Cache.MaxEntries, cfg.Cache.Expiry))
	}

	files, err := static.New(cfg.Static.Root, opts...)
	if err != nil {
		return nil, err
	}

	r := chainrouter.New()
	r.Use(chainrouter.Middleware(middleware.NotFound()))
	if len(headers) > 0 {
		r.Use(chainrouter.Middleware(middleware.CustomHeaders(headers)))
	}
	r.Mount(cfg.Static.Prefix, files)

	if cfg.General.StatusPath != "" {
		r.Get(cfg.General.StatusPath, middleware.Status(r))
	}

	return r, nil
}

// buildHandler wraps the router with the net/http middleware of the daemon.
// Correlation ids are injected first so the access log can carry them.
func buildHandler(cfg *config.Config, router http.Handler) (http.Handler, error) {
	handler := router
	if !cfg.General.DisableCrossOriginRequests {
		handler = corsHandler.Handler(handler)
	}

	handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(logrus.StandardLogger()),
		handlers.PrintRecoveryStack(true),
	)(handler)
	handler = httpMetrics(handler)

	handler, err := logging.BasicAccessLogger(handler, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	return correlation.InjectCorrelationID(handler, correlation.WithPropagation()), nil
}

// run serves handler and, when configured, the metrics endpoint until ctx
// is done or either server fails. onReady is called with the name and
// address of each bound listener.
func run(ctx context.Context, cfg *config.Config, handler http.Handler, onReady func(name string, addr net.Addr)) error {
	g, ctx := errgroup.WithContext(ctx)

	serve := func(name, addr string, h http.Handler) {
		server := &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
		}

		g.Go(func() error {
			return chainrouter.ListenAndServe(ctx, server, cfg.Server.ShutdownTimeout, func(bound net.Addr) {
				log.WithFields(log.Fields{
					"listener": name,
					"address":  bound.String(),
				}).Info("listening")

				if onReady != nil {
					onReady(name, bound)
				}
			})
		})
	}

	serve("http", cfg.General.ListenAddr, handler)
	if cfg.General.MetricsAddress != "" {
		serve("metrics", cfg.General.MetricsAddress, promhttp.Handler())
	}

	return g.Wait()
}
