package httperrors

import (
	"fmt"
	"html"
	"net/http"

	"gitlab.com/gitlab-org/chainrouter/internal/errortracking"
	"gitlab.com/gitlab-org/chainrouter/internal/logging"
)

type content struct {
	status int
	title  string
	header string
	detail string
}

var (
	content400 = content{
		http.StatusBadRequest,
		"Bad request (400)",
		"The request could not be read.",
		`<p>The request body was incomplete or could not be received.</p>`,
	}
	content404 = content{
		http.StatusNotFound,
		"The page you're looking for could not be found (404)",
		"The page you're looking for could not be found.",
		`<p>Make sure the address is correct and that the page hasn't moved.</p>`,
	}
	content500 = content{
		http.StatusInternalServerError,
		"Something went wrong (500)",
		"Whoops, something went wrong on our end.",
		`<p>Try refreshing the page, or going back and attempting the action again.</p>`,
	}
)

const predefinedErrorPage = `<!DOCTYPE html>
<html>
<head>
  <meta content="width=device-width, initial-scale=1, maximum-scale=1" name="viewport">
  <title>%v</title>
  <style>
    body { color: #666; text-align: center; font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; margin: auto; font-size: 14px; }
    h1 { font-size: 56px; line-height: 100px; font-weight: 400; color: #456; }
    h3 { color: #456; font-size: 20px; font-weight: 400; line-height: 28px; }
  </style>
</head>
<body>
  <h1>%d</h1>
  <h3>%v</h3>
  %v
</body>
</html>`

func generateErrorHTML(c content) string {
	return fmt.Sprintf(predefinedErrorPage, html.EscapeString(c.title), c.status, html.EscapeString(c.header), c.detail)
}

func serveErrorPage(w http.ResponseWriter, c content) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(c.status)
	fmt.Fprintln(w, generateErrorHTML(c))
}

// Serve400 writes a 400 error page to w
func Serve400(w http.ResponseWriter) {
	serveErrorPage(w, content400)
}

// Serve404 writes a 404 error page to w
func Serve404(w http.ResponseWriter) {
	serveErrorPage(w, content404)
}

// Serve500 writes a 500 error page to w
func Serve500(w http.ResponseWriter) {
	serveErrorPage(w, content500)
}

// Serve500WithRequest logs and captures err, then writes a 500 error page to w
func Serve500WithRequest(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logging.LogRequest(r).WithError(err).Error(reason)
	errortracking.CaptureErrWithReqAndStackTrace(err, r, errortracking.WithField("reason", reason))
	Serve500(w)
}
