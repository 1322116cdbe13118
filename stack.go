package chainrouter

// Stack resolves the chain for a request. Entries are looked up in a
// fixed order: global middleware, middleware for path, the handler for
// method and path, and the catch-all for path. List entries are spliced
// in registration order. When nothing matches the chain is empty.
func (r *Router) Stack(method, path string) Chain {
	lookups := [...][]Handler{
		r.table.lookup(Key{Kind: KindPathMiddleware, Path: path}),
		r.table.lookup(Key{Kind: KindMethod, Method: method, Path: path}),
		r.table.lookup(Key{Kind: KindCatchAll, Path: path}),
	}

	size := len(r.table.global)
	for _, handlers := range lookups {
		size += len(handlers)
	}

	chain := make(Chain, 0, size)
	chain = append(chain, r.table.global...)
	for _, handlers := range lookups {
		chain = append(chain, handlers...)
	}

	return chain
}
