package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gitlab.com/gitlab-org/chainrouter"
)

var errInvalidHeaderParameter = errors.New("invalid syntax specified as header parameter")

// ParseHeaderString parses "Name: value" strings into a header map
func ParseHeaderString(customHeaders []string) (http.Header, error) {
	headers := http.Header{}
	for _, keyValueString := range customHeaders {
		keyValue := strings.SplitN(keyValueString, ":", 2)
		if len(keyValue) != 2 {
			return nil, errInvalidHeaderParameter
		}

		key := strings.TrimSpace(keyValue[0])
		value := strings.TrimSpace(keyValue[1])
		if key == "" {
			return nil, errInvalidHeaderParameter
		}

		headers[key] = append(headers[key], value)
	}
	return headers, nil
}

// CustomHeaders returns a handler adding headers to every response
// before passing the request on
func CustomHeaders(headers http.Header) chainrouter.Handler {
	return func(req *chainrouter.Request, res *chainrouter.Response, next chainrouter.Next) {
		for k, v := range headers {
			for _, value := range v {
				res.AddHeader(k, value)
			}
		}

		next()
	}
}
