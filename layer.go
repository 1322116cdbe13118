package chainrouter

type layerKind uint8

const (
	layerMiddleware layerKind = iota + 1
	layerPathMiddleware
	layerMount
)

// Layer is one argument of Router.Use. Layers are built with Middleware,
// PathMiddleware, MountAt and Mount.
type Layer struct {
	kind     layerKind
	path     string
	handlers []Handler
	router   *Router
}

// Middleware appends handlers to the global middleware list.
func Middleware(handler Handler, more ...Handler) Layer {
	return Layer{kind: layerMiddleware, handlers: handlerList(handler, more)}
}

// PathMiddleware registers middleware that only runs for path. It
// replaces middleware registered before for the same path.
func PathMiddleware(path string, handler Handler, more ...Handler) Layer {
	mustPath(path)
	return Layer{kind: layerPathMiddleware, path: path, handlers: handlerList(handler, more)}
}

// MountAt merges the routes of child under prefix. The child's global
// middleware is appended to the parent's global list.
func MountAt(prefix string, child *Router) Layer {
	return Layer{kind: layerMount, path: prefix, router: mustRouter(child)}
}

// Mount merges the routes of child without rewriting their paths.
func Mount(child *Router) Layer {
	return Layer{kind: layerMount, router: mustRouter(child)}
}

// Use applies layers in argument order. Global middleware runs in the
// order it reached the router, whether registered directly or brought
// in by a mount. Mounting copies the child's table at call time: later
// changes to the child are not seen by r.
func (r *Router) Use(layers ...Layer) {
	for _, l := range layers {
		switch l.kind {
		case layerMiddleware:
			r.table.appendGlobal(l.handlers...)
		case layerPathMiddleware:
			r.table.set(Key{Kind: KindPathMiddleware, Path: l.path}, copyHandlers(l.handlers))
		case layerMount:
			if l.router == r {
				panic("chainrouter: router mounted into itself")
			}
			r.table.merge(l.router.table, l.path)
		default:
			panic("chainrouter: Layer must be built with Middleware, PathMiddleware, MountAt or Mount")
		}
	}
}

func mustRouter(r *Router) *Router {
	if r == nil || r.table == nil {
		panic("chainrouter: nil router")
	}

	return r
}
