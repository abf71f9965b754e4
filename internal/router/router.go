// Package router maps request paths onto page views. Patterns are static
// strings matched exactly after normalization; anything else resolves to the
// fallback view.
package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lenon69/MegJoniShop/internal/pages"
)

// MatchKind tells whether a path hit a registered route or the fallback.
type MatchKind int

const (
	Exact MatchKind = iota
	Fallback
)

func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Route binds a static pattern to a view.
type Route struct {
	Pattern string
	Name    string
	View    pages.View
}

// Match is the outcome of resolving one path.
type Match struct {
	Pattern string
	Name    string
	View    pages.View
	Kind    MatchKind
}

// Router is immutable after New.
type Router struct {
	routes   []Route
	index    map[string]int
	fallback pages.View
}

// New builds a router. When two routes share a pattern the first one wins.
func New(routes []Route, fallback pages.View) (*Router, error) {
	if fallback == nil {
		return nil, errors.New("router: fallback view is required")
	}
	r := &Router{
		routes:   make([]Route, 0, len(routes)),
		index:    make(map[string]int, len(routes)),
		fallback: fallback,
	}
	for i, rt := range routes {
		if rt.View == nil {
			return nil, fmt.Errorf("router: route %d (%q) has no view", i, rt.Pattern)
		}
		rt.Pattern = Normalize(rt.Pattern)
		if _, dup := r.index[rt.Pattern]; dup {
			continue
		}
		r.index[rt.Pattern] = len(r.routes)
		r.routes = append(r.routes, rt)
	}
	return r, nil
}

// FromRegistry registers every view of reg under its path.
func FromRegistry(reg *pages.Registry) (*Router, error) {
	src := reg.Routes()
	routes := make([]Route, 0, len(src))
	for _, p := range src {
		routes = append(routes, Route{Pattern: p.Path, Name: p.Name, View: p.View})
	}
	return New(routes, reg.NotFound())
}

// Resolve returns the view for path. It is total: unmatched paths yield the
// fallback view and Fallback.
func (r *Router) Resolve(path string) (pages.View, MatchKind) {
	m := r.Match(path)
	return m.View, m.Kind
}

// Match resolves path and reports which pattern matched.
func (r *Router) Match(path string) Match {
	if i, ok := r.index[Normalize(path)]; ok {
		rt := r.routes[i]
		return Match{Pattern: rt.Pattern, Name: rt.Name, View: rt.View, Kind: Exact}
	}
	return Match{View: r.fallback, Kind: Fallback}
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Normalize trims whitespace, forces a leading slash, collapses repeated
// slashes and drops a trailing slash. The empty path is the root.
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
