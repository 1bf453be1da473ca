// Package router dispatches requests through an ordered table of exact
// (method, path) routes, answering CORS preflight for every path and handing
// anything unmatched to per-method fallbacks.
package router

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/joao-fontenele/abai-springs-mock/internal/telemetry"
)

const (
	RoutePreflight      = "preflight"
	RouteNotImplemented = "not-implemented"
)

var meter = otel.Meter("router")

type route struct {
	method  string
	path    string
	name    string
	handler http.Handler
}

type Router struct {
	routes         []route
	fallbacks      map[string]route
	preflight      route
	notImplemented route
	dispatches     metric.Int64Counter
}

func New() (*Router, error) {
	dispatches, err := meter.Int64Counter("mock.dispatch.count",
		metric.WithDescription("Requests dispatched, by route"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create dispatch counter: %w", err)
	}

	return &Router{
		fallbacks: make(map[string]route),
		preflight: route{
			name:    RoutePreflight,
			handler: telemetry.WithHTTPRoute(RoutePreflight, http.HandlerFunc(Preflight)),
		},
		notImplemented: route{
			name:    RouteNotImplemented,
			handler: telemetry.WithHTTPRoute(RouteNotImplemented, http.HandlerFunc(notImplemented)),
		},
		dispatches: dispatches,
	}, nil
}

// Handle appends a route. Routes are tried in registration order and the path
// must equal the request path exactly; the query string is never consulted.
func (rt *Router) Handle(method, path string, h http.HandlerFunc) {
	rt.routes = append(rt.routes, route{
		method:  method,
		path:    path,
		name:    path,
		handler: telemetry.WithHTTPRoute(path, h),
	})
}

// Fallback sets the handler for requests of the given method that no route matched.
func (rt *Router) Fallback(method, name string, h http.Handler) {
	rt.fallbacks[method] = route{
		method:  method,
		name:    name,
		handler: telemetry.WithHTTPRoute(name, h),
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rte := rt.match(r)
	rt.dispatches.Add(r.Context(), 1, metric.WithAttributes(
		attribute.String("route", rte.name),
		attribute.String("method", r.Method),
	))
	rte.handler.ServeHTTP(w, r)
}

func (rt *Router) match(r *http.Request) route {
	if r.Method == http.MethodOptions {
		return rt.preflight
	}

	for _, rte := range rt.routes {
		if rte.method == r.Method && rte.path == r.URL.Path {
			return rte
		}
	}

	if rte, ok := rt.fallbacks[r.Method]; ok {
		return rte
	}

	return rt.notImplemented
}

func notImplemented(w http.ResponseWriter, r *http.Request) {
	http.Error(w, fmt.Sprintf("Unsupported method (%q)", r.Method), http.StatusNotImplemented)
}
