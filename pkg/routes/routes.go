// Package routes provides route registration and HTTP multiplexer
// construction for handler groups.
package routes

import (
	"fmt"
	"net/http"
	"strings"
)

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
}

// Mux accumulates routes and groups and builds the final http.Handler.
type Mux struct {
	routes []Route
}

// NewMux creates an empty route multiplexer.
func NewMux() *Mux {
	return &Mux{}
}

// RegisterRoute adds a single route.
func (m *Mux) RegisterRoute(route Route) {
	m.routes = append(m.routes, route)
}

// RegisterGroup adds every route in the group with the group prefix applied.
func (m *Mux) RegisterGroup(group Group) {
	for _, route := range group.Routes {
		m.routes = append(m.routes, Route{
			Method:  route.Method,
			Pattern: joinPattern(group.Prefix, route.Pattern),
			Handler: route.Handler,
		})
	}
}

// Build constructs the http.Handler from all registered routes.
func (m *Mux) Build() http.Handler {
	mux := http.NewServeMux()
	for _, route := range m.routes {
		mux.HandleFunc(fmt.Sprintf("%s %s", route.Method, route.Pattern), route.Handler)
	}
	return mux
}

func joinPattern(prefix, pattern string) string {
	if pattern == "" {
		return prefix
	}
	return strings.TrimSuffix(prefix, "/") + pattern
}
