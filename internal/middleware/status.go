package middleware

import (
	"gitlab.com/gitlab-org/chainrouter"
)

type status struct {
	Status string `json:"status"`
	Routes int    `json:"routes"`
}

// Status is serving the application status check for router
func Status(router *chainrouter.Router) chainrouter.Handler {
	return func(req *chainrouter.Request, res *chainrouter.Response, next chainrouter.Next) {
		res.SetHeader("Cache-Control", "no-store")
		res.JSON(status{Status: "success", Routes: len(router.Routes())})
	}
}
