// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"strings"
)

// Mount describes the exact paths a module owns and the handler serving them.
//
// Composition registers every path without a method so the module's own
// method patterns decide between a match and 405 Method Not Allowed.
type Mount struct {
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Router registers method-scoped routes on a private mux and records the
// paths they cover.
type Router struct {
	mux   *http.ServeMux
	paths []string
	seen  map[string]struct{}
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux(), seen: map[string]struct{}{}}
}

// HandleFunc registers handler for method and path, e.g. ("GET", "/blog").
func (r *Router) HandleFunc(method string, path string, handler http.HandlerFunc) {
	if r == nil || handler == nil {
		return
	}
	method = strings.ToUpper(strings.TrimSpace(method))
	path = strings.TrimSpace(path)
	r.mux.HandleFunc(method+" "+path, handler)
	if _, ok := r.seen[path]; ok {
		return
	}
	r.seen[path] = struct{}{}
	r.paths = append(r.paths, path)
}

// Mount returns the recorded paths and the router mux.
func (r *Router) Mount() Mount {
	if r == nil {
		return Mount{}
	}
	paths := make([]string, len(r.paths))
	copy(paths, r.paths)
	return Mount{Paths: paths, Handler: r.mux}
}
