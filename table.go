package chainrouter

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags the part of the table a Key addresses.
type Kind uint8

const (
	// KindPathMiddleware keys middleware scoped to a single path.
	KindPathMiddleware Kind = iota + 1
	// KindMethod keys a handler for one method and path.
	KindMethod
	// KindCatchAll keys a handler for a path regardless of method.
	KindCatchAll
)

func (k Kind) String() string {
	switch k {
	case KindPathMiddleware:
		return "USE"
	case KindMethod:
		return "METHOD"
	case KindCatchAll:
		return "ALL"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Key identifies an entry of the route table. Keys are compared
// structurally, Method is only set for KindMethod.
type Key struct {
	Kind   Kind
	Method string
	Path   string
}

func (k Key) String() string {
	if k.Kind == KindMethod {
		return k.Method + " " + k.Path
	}

	return k.Kind.String() + " " + k.Path
}

func (k Key) withPrefix(prefix string) Key {
	k.Path = joinPath(prefix, k.Path)
	return k
}

// joinPath prepends a mount prefix. A child path of "/" addresses the
// prefix itself.
func joinPath(prefix, path string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return path
	}

	if path == "/" {
		return prefix
	}

	return prefix + path
}

// routeTable holds the exact-match entries and the ordered global
// middleware list. It is only mutated during setup.
type routeTable struct {
	global  []Handler
	entries map[Key][]Handler
}

func newRouteTable() *routeTable {
	return &routeTable{
		global:  []Handler{},
		entries: make(map[Key][]Handler),
	}
}

// set replaces whatever was registered under key.
func (t *routeTable) set(key Key, handlers []Handler) {
	t.entries[key] = handlers
}

func (t *routeTable) lookup(key Key) []Handler {
	return t.entries[key]
}

func (t *routeTable) appendGlobal(handlers ...Handler) {
	t.global = append(t.global, handlers...)
}

// merge copies every entry of child into t, rewriting paths with prefix,
// and appends the child's global middleware after t's own.
func (t *routeTable) merge(child *routeTable, prefix string) {
	for key, handlers := range child.entries {
		t.set(key.withPrefix(prefix), copyHandlers(handlers))
	}

	t.appendGlobal(child.global...)
}

func (t *routeTable) keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Path != keys[j].Path {
			return keys[i].Path < keys[j].Path
		}
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Method < keys[j].Method
	})

	return keys
}

func copyHandlers(handlers []Handler) []Handler {
	out := make([]Handler, len(handlers))
	copy(out, handlers)
	return out
}
