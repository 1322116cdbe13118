package middleware

import (
	"gitlab.com/gitlab-org/chainrouter"
	"gitlab.com/gitlab-org/chainrouter/internal/httperrors"
)

// NotFound runs the rest of the chain and answers with the 404 page when
// every later handler passed the request on without ending the response.
// Handlers that suspend are waited for until they end the response, pass
// it on, or the request context is done. It must come first in the global
// list.
func NotFound() chainrouter.Handler {
	return func(req *chainrouter.Request, res *chainrouter.Response, next chainrouter.Next) {
		next()

		select {
		case <-res.Done():
			return
		case <-req.Exhausted():
		case <-req.Context().Done():
			return
		}

		if res.Ended() {
			return
		}

		httperrors.Serve404(res)
		res.End()
	}
}
