package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"gitlab.com/gitlab-org/chainrouter/internal/middleware"
)

var (
	ErrNoListener           = errors.New("listen address must be defined")
	ErrSameListenAddress    = errors.New("metrics-address must differ from listen")
	ErrNoRoot               = errors.New("root must be defined")
	ErrRootNotDirectory     = errors.New("root must be a directory")
	ErrEmptyRouteSeparator  = errors.New("route-separator must not be empty")
	ErrInvalidPrefix        = errors.New("prefix must be empty or start with the route separator")
	ErrNegativeCacheEntries = errors.New("cache-max-entries must not be negative")
	ErrInvalidCacheExpiry   = errors.New("cache-expiry must be greater than zero when the cache is enabled")
	ErrInvalidLogFormat     = errors.New("log-format must be either 'text' or 'json'")
)

func validateConfig(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result, validateListeners(config)...)
	result = multierror.Append(result, validateStatic(config)...)
	result = multierror.Append(result, validateCache(config)...)

	if config.Log.Format != "text" && config.Log.Format != "json" {
		result = multierror.Append(result, ErrInvalidLogFormat)
	}

	if _, err := middleware.ParseHeaderString(config.General.CustomHeaders); err != nil {
		result = multierror.Append(result, fmt.Errorf("header: %w", err))
	}

	return result.ErrorOrNil()
}

func validateListeners(config *Config) []error {
	var errs []error

	if config.General.ListenAddr == "" {
		errs = append(errs, ErrNoListener)
	}
	if config.General.MetricsAddress != "" && config.General.MetricsAddress == config.General.ListenAddr {
		errs = append(errs, ErrSameListenAddress)
	}

	return errs
}

func validateStatic(config *Config) []error {
	var errs []error

	if config.Static.RouteSeparator == "" {
		errs = append(errs, ErrEmptyRouteSeparator)
	} else if config.Static.Prefix != "" && config.Static.Prefix[:1] != config.Static.RouteSeparator[:1] {
		errs = append(errs, ErrInvalidPrefix)
	}

	if config.Static.Root == "" {
		return append(errs, ErrNoRoot)
	}

	fi, err := os.Stat(config.Static.Root)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("root: %w", err))
	case !fi.IsDir():
		errs = append(errs, ErrRootNotDirectory)
	}

	return errs
}

func validateCache(config *Config) []error {
	if config.Cache.MaxEntries < 0 {
		return []error{ErrNegativeCacheEntries}
	}
	if config.Cache.MaxEntries > 0 && config.Cache.Expiry <= 0 {
		return []error{ErrInvalidCacheExpiry}
	}

	return nil
}
