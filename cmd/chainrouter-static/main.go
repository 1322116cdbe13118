package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/gitlab-org/labkit/log"

	"gitlab.com/gitlab-org/chainrouter/internal/config"
	"gitlab.com/gitlab-org/chainrouter/internal/errortracking"
	"gitlab.com/gitlab-org/chainrouter/internal/logging"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func initErrorReporting(sentryDSN, sentryEnvironment string) {
	if sentryDSN == "" {
		return
	}

	if err := errortracking.Initialize(sentryDSN, sentryEnvironment, VERSION); err != nil {
		log.WithError(err).Warn("failed to initialize errortracking")
	}
}

func appMain() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.General.ShowVersion {
		fmt.Println(VERSION)
		return nil
	}

	if err := logging.ConfigureLogging(cfg.Log.Format, cfg.Log.Verbose); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Print("chainrouter-static")

	config.LogConfig(cfg)
	initErrorReporting(cfg.Sentry.DSN, cfg.Sentry.Environment)

	router, err := buildRouter(cfg)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	handler, err := buildHandler(cfg, router)
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, handler, nil)
}

func main() {
	if err := appMain(); err != nil {
		errortracking.CaptureErrWithStackTrace(err)
		log.WithError(err).Error("chainrouter-static stopped")
		os.Exit(1)
	}
}
