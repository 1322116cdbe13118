package chainrouter

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"gitlab.com/gitlab-org/chainrouter/internal/logging"
)

// ErrResponseEnded is returned by writes after End, or after the request
// was abandoned by the server.
var ErrResponseEnded = errors.New("response already ended")

// Response is the sink handlers write to. The status code and headers are
// sent with the first write or on End. Response implements
// http.ResponseWriter so it can be passed to net/http helpers.
type Response struct {
	w   http.ResponseWriter
	req *http.Request

	mu          sync.Mutex
	status      int
	wroteHeader bool
	ended       bool
	detached    bool

	// receives header changes once detached
	orphan http.Header

	done chan struct{}
}

func newResponse(w http.ResponseWriter, r *http.Request) *Response {
	return &Response{
		w:      w,
		req:    r,
		status: http.StatusOK,
		done:   make(chan struct{}),
	}
}

// Header returns the header map that will be sent with the response.
// Once ServeHTTP has returned it returns a map that is never sent.
func (res *Response) Header() http.Header {
	res.mu.Lock()
	defer res.mu.Unlock()

	return res.headerLocked()
}

// SetHeader sets a response header, replacing existing values.
func (res *Response) SetHeader(key, value string) {
	res.mu.Lock()
	defer res.mu.Unlock()

	res.headerLocked().Set(key, value)
}

// AddHeader adds value to a response header.
func (res *Response) AddHeader(key, value string) {
	res.mu.Lock()
	defer res.mu.Unlock()

	res.headerLocked().Add(key, value)
}

// SetStatus sets the status code. It has no effect once anything was
// written.
func (res *Response) SetStatus(code int) {
	res.mu.Lock()
	defer res.mu.Unlock()

	if !res.wroteHeader {
		res.status = code
	}
}

// WriteHeader is SetStatus, for http.ResponseWriter.
func (res *Response) WriteHeader(code int) {
	res.SetStatus(code)
}

// Status returns the status code that was or will be sent.
func (res *Response) Status() int {
	res.mu.Lock()
	defer res.mu.Unlock()

	return res.status
}

// Write sends p as part of the body.
func (res *Response) Write(p []byte) (int, error) {
	res.mu.Lock()
	defer res.mu.Unlock()

	if res.ended || res.detached {
		return 0, ErrResponseEnded
	}

	res.writeHeaderLocked()

	return res.w.Write(p)
}

// End terminates the response. Calling End more than once is a no-op.
func (res *Response) End() {
	res.mu.Lock()
	defer res.mu.Unlock()

	if res.ended {
		return
	}

	if !res.detached {
		res.writeHeaderLocked()
	}

	res.ended = true
	close(res.done)
}

// Ended reports whether End was called.
func (res *Response) Ended() bool {
	select {
	case <-res.done:
		return true
	default:
		return false
	}
}

// Done is closed when the response ends.
func (res *Response) Done() <-chan struct{} {
	return res.done
}

// Send writes body and ends the response.
func (res *Response) Send(body []byte) error {
	_, err := res.Write(body)
	res.End()

	return err
}

// SendStatus sets code, writes its status text as body and ends the
// response.
func (res *Response) SendStatus(code int) error {
	res.SetStatus(code)
	res.SetHeader("Content-Type", "text/plain; charset=utf-8")

	return res.Send([]byte(http.StatusText(code)))
}

// JSON encodes v as the body and ends the response. Encoding failures are
// logged and the response ends without a body.
func (res *Response) JSON(v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.LogRequest(res.req).WithError(err).Error("could not encode JSON response body")
		res.End()
		return
	}

	res.SetHeader("Content-Type", "application/json; charset=utf-8")
	if err := res.Send(body); err != nil {
		logging.LogRequest(res.req).WithError(err).Warn("could not write JSON response body")
	}
}

// Raw returns the underlying http.ResponseWriter. Writing to it bypasses
// the status and end bookkeeping of Response.
func (res *Response) Raw() http.ResponseWriter {
	return res.w
}

func (res *Response) headerLocked() http.Header {
	if !res.detached {
		return res.w.Header()
	}

	if res.orphan == nil {
		res.orphan = http.Header{}
	}

	return res.orphan
}

func (res *Response) writeHeaderLocked() {
	if res.wroteHeader {
		return
	}

	res.wroteHeader = true
	res.w.WriteHeader(res.status)
}

// detach stops all further access to the underlying writer. It is called
// once ServeHTTP returns.
func (res *Response) detach() {
	res.mu.Lock()
	defer res.mu.Unlock()

	res.detached = true
}
