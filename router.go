// Package chainrouter routes HTTP requests by exact method and path to an
// ordered chain of continuation-passing handlers.
//
// A chain is assembled per request from four table entries, always in
// this order:
//
//   - global middleware, in registration order
//   - middleware registered for the path
//   - the handler registered for the method and path
//   - the catch-all handler registered for the path
//
// Each handler receives a next function and decides whether to call it:
//
//	r := chainrouter.New()
//	r.Use(chainrouter.Middleware(func(req *chainrouter.Request, res *chainrouter.Response, next chainrouter.Next) {
//		res.SetHeader("X-Served-By", "chainrouter")
//		next()
//	}))
//	r.Get("/ping", func(req *chainrouter.Request, res *chainrouter.Response, next chainrouter.Next) {
//		res.Send([]byte("pong"))
//	})
//
// Routes and middleware are registered during setup, before serving
// starts. The table is not locked and must not change while requests are
// in flight.
package chainrouter

import (
	"net/http"
	"strings"
)

// Router owns a route table. Mounting a router into another copies its
// table, the mounted router stays usable on its own.
type Router struct {
	table *routeTable
}

// New creates an empty Router.
func New() *Router {
	return &Router{table: newRouteTable()}
}

// Get registers handlers for GET requests to path.
func (r *Router) Get(path string, handler Handler, more ...Handler) {
	r.Handle(http.MethodGet, path, handler, more...)
}

// Post registers handlers for POST requests to path.
func (r *Router) Post(path string, handler Handler, more ...Handler) {
	r.Handle(http.MethodPost, path, handler, more...)
}

// Put registers handlers for PUT requests to path.
func (r *Router) Put(path string, handler Handler, more ...Handler) {
	r.Handle(http.MethodPut, path, handler, more...)
}

// Delete registers handlers for DELETE requests to path.
func (r *Router) Delete(path string, handler Handler, more ...Handler) {
	r.Handle(http.MethodDelete, path, handler, more...)
}

// Patch registers handlers for PATCH requests to path.
func (r *Router) Patch(path string, handler Handler, more ...Handler) {
	r.Handle(http.MethodPatch, path, handler, more...)
}

// Handle registers handlers for method and path, replacing any handlers
// registered before for the same pair. method is upper-cased.
func (r *Router) Handle(method, path string, handler Handler, more ...Handler) {
	if method == "" {
		panic("chainrouter: empty method for path " + path)
	}

	mustPath(path)
	r.table.set(Key{Kind: KindMethod, Method: strings.ToUpper(method), Path: path}, handlerList(handler, more))
}

// All registers catch-all handlers for path. They run after the
// method-specific handlers of the same path, for every method.
func (r *Router) All(path string, handler Handler, more ...Handler) {
	mustPath(path)
	r.table.set(Key{Kind: KindCatchAll, Path: path}, handlerList(handler, more))
}

// Mount merges child into r under prefix. It is shorthand for
// r.Use(MountAt(prefix, child)).
func (r *Router) Mount(prefix string, child *Router) {
	r.Use(MountAt(prefix, child))
}

// Routes returns the registered keys sorted by path.
func (r *Router) Routes() []Key {
	return r.table.keys()
}

// Middlewares returns a copy of the global middleware list.
func (r *Router) Middlewares() []Handler {
	return copyHandlers(r.table.global)
}

func handlerList(handler Handler, more []Handler) []Handler {
	handlers := make([]Handler, 0, len(more)+1)
	handlers = append(handlers, mustHandler(handler))
	for _, h := range more {
		handlers = append(handlers, mustHandler(h))
	}

	return handlers
}

func mustHandler(h Handler) Handler {
	if h == nil {
		panic("chainrouter: nil handler")
	}

	return h
}

func mustPath(path string) {
	if path == "" {
		panic("chainrouter: empty path")
	}
}
