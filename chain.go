package chainrouter

// Next hands control to the following handler of the chain.
type Next func()

// Handler processes a request. It forwards the request by calling next
// and stops the chain by not calling it. Calling next more than once
// re-enters the handlers after it.
type Handler func(req *Request, res *Response, next Next)

// Chain is the flat, ordered list of handlers resolved for one request.
type Chain []Handler

// Run executes the chain. A single cursor, starting before the first
// handler, is shared by every continuation; advancing past the last
// handler only closes req.Exhausted. Handlers that suspend must call next
// once their work completes. next is not safe for concurrent use.
func (c Chain) Run(req *Request, res *Response) {
	cursor := -1

	var next Next
	next = func() {
		cursor++
		if cursor < len(c) {
			c[cursor](req, res, next)
			return
		}

		req.markExhausted()
	}

	next()
}
