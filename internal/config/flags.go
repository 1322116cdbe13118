package config

import (
	"time"

	"github.com/namsral/flag"
)

var (
	listenAddr     = flag.String("listen", ":8080", "The address to listen on for HTTP requests")
	metricsAddress = flag.String("metrics-address", "", "The address to listen on for metrics requests")
	statusPath     = flag.String("status-path", "", "The url path for a status page, e.g., /-/status")

	staticRoot        = flag.String("root", "public", "The directory whose files are served")
	staticPrefix      = flag.String("prefix", "", "The path prefix the directory is mounted under, e.g. /assets")
	routeSeparator    = flag.String("route-separator", "/", "The separator placed between path segments of generated routes. HTTP request paths always start with '/', so routes built with any other separator are not reachable over HTTP")
	extendedMIMETypes = flag.Bool("extended-mime-types", false, "Resolve content types missing from the built-in table with the full MIME database")

	cacheMaxEntries = flag.Int64("cache-max-entries", 0, "Maximum number of file contents kept in memory, 0 disables the cache")
	cacheExpiry     = flag.Duration("cache-expiry", time.Minute, "The maximum time a file's contents are kept in the cache")

	sentryDSN         = flag.String("sentry-dsn", "", "The address for sending sentry crash reporting to")
	sentryEnvironment = flag.String("sentry-environment", "", "The environment for sentry crash reporting")
	logFormat         = flag.String("log-format", "json", "The log output format: 'text' or 'json'")
	logVerbose        = flag.Bool("log-verbose", false, "Verbose logging")

	// HTTP server timeouts
	serverReadTimeout       = flag.Duration("server-read-timeout", 5*time.Second, "ReadTimeout is the maximum duration for reading the entire request, including the body. A zero or negative value means there will be no timeout.")
	serverReadHeaderTimeout = flag.Duration("server-read-header-timeout", time.Second, "ReadHeaderTimeout is the amount of time allowed to read request headers. A zero or negative value means there will be no timeout.")
	serverWriteTimeout      = flag.Duration("server-write-timeout", 0, "WriteTimeout is the maximum duration before timing out writes of the response. A zero or negative value means there will be no timeout.")
	serverShutdownTimeout   = flag.Duration("server-shutdown-timeout", 30*time.Second, "Server shutdown timeout (default: 30s)")

	disableCrossOriginRequests = flag.Bool("disable-cross-origin-requests", false, "Disable cross-origin requests")

	showVersion = flag.Bool("version", false, "Show version")

	// See initFlags()
	header = MultiStringFlag{separator: ";;"}
)

// initFlags will be called from LoadConfig
func initFlags() {
	flag.Var(&header, "header", "The additional http header(s) that should be send to the client")

	// read from -config=/path/to/chainrouter-static-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
