package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	rt, err := New()
	if err != nil {
		t.Fatalf("failed to create router: %v", err)
	}

	rt.Handle(http.MethodGet, "/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "health")
	})
	rt.Handle(http.MethodPost, "/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "health-post")
	})
	rt.Handle(http.MethodGet, "/api/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "shadowed")
	})
	rt.Fallback(http.MethodGet, "static", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "static "+r.URL.Path)
	}))
	rt.Fallback(http.MethodPost, "not-found", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	return rt
}

func TestRouter_ServeHTTP(t *testing.T) {
	rt := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		status int
		body   string
	}{
		{"exact GET match", http.MethodGet, "/api/health", http.StatusOK, "health"},
		{"method selects route", http.MethodPost, "/api/health", http.StatusOK, "health-post"},
		{"query string ignored", http.MethodGet, "/api/health?verbose=1", http.StatusOK, "health"},
		{"trailing slash is not a match", http.MethodGet, "/api/health/", http.StatusOK, "static /api/health/"},
		{"unmatched GET falls back", http.MethodGet, "/index.html", http.StatusOK, "static /index.html"},
		{"unmatched POST falls back", http.MethodPost, "/api/unknown", http.StatusNotFound, ""},
		{"unsupported method", http.MethodDelete, "/api/health", http.StatusNotImplemented, "Unsupported method (\"DELETE\")\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rec.Code)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("expected body %q, got %q", tt.body, rec.Body.String())
			}
		})
	}
}

func TestRouter_Preflight(t *testing.T) {
	rt := newTestRouter(t)

	for _, path := range []string{"/api/health", "/does/not/exist", "/"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, path, nil))

			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("expected empty body, got %q", rec.Body.String())
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("expected origin *, got %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
				t.Errorf("unexpected allow methods %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
				t.Errorf("unexpected allow headers %q", got)
			}
		})
	}
}
