package config

import (
	"time"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

// Config stores all the config options relevant to chainrouter-static.
type Config struct {
	General General
	Static  Static
	Cache   Cache
	Log     Log
	Sentry  Sentry
	Server  Server
}

// General groups settings that are general to the daemon and can not
// be categorized under other head.
type General struct {
	ListenAddr     string
	MetricsAddress string
	StatusPath     string
	CustomHeaders  []string

	DisableCrossOriginRequests bool

	ShowVersion bool
}

// Static groups settings of the directory mapped onto routes
type Static struct {
	Root              string
	Prefix            string
	RouteSeparator    string
	ExtendedMIMETypes bool
}

// Cache configures the in-memory cache of static file contents.
// A zero MaxEntries disables it.
type Cache struct {
	MaxEntries int64
	Expiry     time.Duration
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// Sentry groups settings related to configuring Sentry
type Sentry struct {
	DSN         string
	Environment string
}

// Server groups the http.Server timeouts
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

func loadConfig() (*Config, error) {
	config := &Config{
		General: General{
			ListenAddr:                 *listenAddr,
			MetricsAddress:             *metricsAddress,
			StatusPath:                 *statusPath,
			CustomHeaders:              header.Split(),
			DisableCrossOriginRequests: *disableCrossOriginRequests,
			ShowVersion:                *showVersion,
		},
		Static: Static{
			Root:              *staticRoot,
			Prefix:            *staticPrefix,
			RouteSeparator:    *routeSeparator,
			ExtendedMIMETypes: *extendedMIMETypes,
		},
		Cache: Cache{
			MaxEntries: *cacheMaxEntries,
			Expiry:     *cacheExpiry,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Sentry: Sentry{
			DSN:         *sentryDSN,
			Environment: *sentryEnvironment,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			ShutdownTimeout:   *serverShutdownTimeout,
		},
	}

	if config.General.ShowVersion {
		return config, nil
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"cache-expiry":                  config.Cache.Expiry,
		"cache-max-entries":             config.Cache.MaxEntries,
		"default-config-filename":       flag.DefaultConfigFlagname,
		"disable-cross-origin-requests": config.General.DisableCrossOriginRequests,
		"extended-mime-types":           config.Static.ExtendedMIMETypes,
		"header":                        len(config.General.CustomHeaders),
		"listen":                        config.General.ListenAddr,
		"log-format":                    config.Log.Format,
		"metrics-address":               config.General.MetricsAddress,
		"prefix":                        config.Static.Prefix,
		"route-separator":               config.Static.RouteSeparator,
		"root":                          config.Static.Root,
		"server-read-timeout":           config.Server.ReadTimeout,
		"server-read-header-timeout":    config.Server.ReadHeaderTimeout,
		"server-shutdown-timeout":       config.Server.ShutdownTimeout,
		"server-write-timeout":          config.Server.WriteTimeout,
		"status-path":                   config.General.StatusPath,
	}).Debug("Start daemon with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments or
// via config file, and populates a Config object with those values
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig()
}
