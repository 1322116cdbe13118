package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/log"
)

// ConfigureLogging will initialize the system logger.
func ConfigureLogging(format string, verbose bool) error {
	if format == "" {
		format = "json"
	}

	level := "info"
	if verbose {
		level = "trace"
	}

	_, err := log.Initialize(
		log.WithFormatter(format),
		log.WithLogLevel(level),
	)
	return err
}

// getAccessLogger returns the default logger unless the format is text,
// in which case a combined HTTP access logger is configured.
func getAccessLogger(format string) (*logrus.Logger, error) {
	if format != "text" && format != "" {
		return logrus.StandardLogger(), nil
	}

	accessLogger := log.New()
	_, err := log.Initialize(
		log.WithLogger(accessLogger),
		log.WithFormatter("combined"),
	)
	if err != nil {
		return nil, err
	}

	return accessLogger, nil
}

// BasicAccessLogger wraps handler with the labkit HTTP access logger
func BasicAccessLogger(handler http.Handler, format string) (http.Handler, error) {
	accessLogger, err := getAccessLogger(format)
	if err != nil {
		return nil, err
	}

	return log.AccessLogger(handler,
		log.WithExtraFields(extraFields),
		log.WithAccessLogger(accessLogger),
		log.WithXFFAllowed(func(sip string) bool { return false }),
	), nil
}

func extraFields(r *http.Request) log.Fields {
	return log.Fields{
		"correlation_id": correlation.ExtractFromContext(r.Context()),
		"router_host":    r.Host,
	}
}

// LogRequest returns a log entry carrying the correlation id, method and
// path of r. r may be nil.
func LogRequest(r *http.Request) *logrus.Entry {
	if r == nil {
		return log.WithFields(log.Fields{})
	}

	return log.WithFields(log.Fields{
		"correlation_id": correlation.ExtractFromContext(r.Context()),
		"host":           r.Host,
		"method":         r.Method,
		"path":           r.URL.Path,
	})
}
