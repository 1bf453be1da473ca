package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/joao-fontenele/abai-springs-mock/internal/domain"
	"github.com/joao-fontenele/abai-springs-mock/internal/messaging"
	"github.com/joao-fontenele/abai-springs-mock/internal/router"
	"github.com/joao-fontenele/abai-springs-mock/internal/static"
)

type published struct {
	topic string
	key   string
	event any
}

type fakePublisher struct {
	events []published
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, topic, key string, event any) error {
	f.events = append(f.events, published{topic: topic, key: key, event: event})
	return f.err
}

const dashboardHTML = "<html><body>admin</body></html>"

func newTestServer(t *testing.T, publisher Publisher) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "admin-dashboard-fixed.html"), []byte(dashboardHTML), 0o644); err != nil {
		t.Fatalf("failed to write dashboard: %v", err)
	}
	root, err := static.NewRoot(dir, logger)
	if err != nil {
		t.Fatalf("failed to create root: %v", err)
	}

	rt, err := router.New()
	if err != nil {
		t.Fatalf("failed to create router: %v", err)
	}

	handler := NewHandler(publisher, logger)
	handler.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.Local) }
	handler.Register(rt, root)
	return rt
}

func doRequest(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHandler_Fixtures(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/api/products", `[
			{"_id":"1","name":"Abai Water 500ml","brand":"Abai","price":50,"stock":150},
			{"_id":"2","name":"Abai Water 1L","brand":"Abai","price":80,"stock":200},
			{"_id":"3","name":"Sprinkle Water 500ml","brand":"Sprinkle","price":45,"stock":120}]`},
		{"/api/outlets", `[
			{"_id":"1","name":"Nairobi Central","location":"Nairobi CBD","phone":"+254 700 123 456","status":"Active"},
			{"_id":"2","name":"Mombasa Branch","location":"Mombasa City","phone":"+254 700 789 012","status":"Active"}]`},
		{"/api/orders", `[
			{"_id":"1","orderNumber":"ORD001","customer":"John Doe","total":100,"status":"Delivered"},
			{"_id":"2","orderNumber":"ORD002","customer":"Jane Smith","total":45,"status":"Processing"}]`},
		{"/api/auth/users", `[
			{"_id":"1","name":"John Doe","email":"john@example.com","phone":"+254 700 123 456"},
			{"_id":"2","name":"Jane Smith","email":"jane@example.com","phone":"+254 700 789 012"}]`},
		{"/api/stock-alerts/statistics", `{"activeAlerts":5,"alertsSentToday":12,"monitoringActive":true,"totalPredictions":8}`},
		{"/api/stock-alerts", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(server, http.MethodGet, tt.path)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			if rec.Header().Get("Content-Type") != "application/json" {
				t.Errorf("expected application/json, got %s", rec.Header().Get("Content-Type"))
			}
			if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Errorf("expected CORS origin *, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
			}

			var got, want any
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if err := json.Unmarshal([]byte(tt.want), &want); err != nil {
				t.Fatalf("bad fixture literal: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}

func TestHandler_HandleHealth(t *testing.T) {
	server := newTestServer(t, nil)

	rec := doRequest(server, http.MethodGet, "/api/health?probe=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decode[map[string]string](t, rec)
	if resp["status"] != "OK" {
		t.Errorf("expected status OK, got %s", resp["status"])
	}
	if resp["message"] == "" {
		t.Error("expected a message")
	}
	if resp["timestamp"] != "2025-03-14T09:26:53.589793" {
		t.Errorf("unexpected timestamp %s", resp["timestamp"])
	}
}

func TestHandler_HandleMonitoring(t *testing.T) {
	t.Run("start and stop are idempotent", func(t *testing.T) {
		server := newTestServer(t, nil)

		for _, tc := range []struct {
			path    string
			message string
		}{
			{"/api/stock-alerts/monitoring/start", "Monitoring started"},
			{"/api/stock-alerts/monitoring/stop", "Monitoring stopped"},
		} {
			first := doRequest(server, http.MethodPost, tc.path)
			second := doRequest(server, http.MethodPost, tc.path)

			if first.Code != http.StatusOK {
				t.Fatalf("%s: expected status 200, got %d", tc.path, first.Code)
			}
			if first.Body.String() != second.Body.String() {
				t.Errorf("%s: repeated calls differ: %q vs %q", tc.path, first.Body.String(), second.Body.String())
			}

			resp := decode[monitoringResponse](t, first)
			if !resp.Success || resp.Message != tc.message {
				t.Errorf("%s: unexpected response %+v", tc.path, resp)
			}
		}
	})

	t.Run("publishes toggle events", func(t *testing.T) {
		publisher := &fakePublisher{}
		server := newTestServer(t, publisher)

		doRequest(server, http.MethodPost, "/api/stock-alerts/monitoring/start")
		doRequest(server, http.MethodPost, "/api/stock-alerts/monitoring/stop")

		if len(publisher.events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(publisher.events))
		}
		for i, action := range []domain.MonitoringAction{domain.MonitoringStarted, domain.MonitoringStopped} {
			ev := publisher.events[i]
			if ev.topic != messaging.TopicMonitoring {
				t.Errorf("expected topic %s, got %s", messaging.TopicMonitoring, ev.topic)
			}
			toggled, ok := ev.event.(domain.MonitoringToggledEvent)
			if !ok {
				t.Fatalf("unexpected event type %T", ev.event)
			}
			if toggled.Action != action || ev.key != string(action) {
				t.Errorf("expected action %s, got %s (key %s)", action, toggled.Action, ev.key)
			}
			if toggled.EventID == "" {
				t.Error("expected event id")
			}
		}
	})

	t.Run("publish failure does not change the response", func(t *testing.T) {
		server := newTestServer(t, &fakePublisher{err: errors.New("broker down")})

		rec := doRequest(server, http.MethodPost, "/api/stock-alerts/monitoring/start")
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Monitoring started") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})
}

func TestHandler_Fallbacks(t *testing.T) {
	server := newTestServer(t, nil)

	t.Run("admin-fixed serves the dashboard file", func(t *testing.T) {
		rewritten := doRequest(server, http.MethodGet, AdminPath)
		direct := doRequest(server, http.MethodGet, AdminDashboard)

		if rewritten.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rewritten.Code)
		}
		if rewritten.Body.String() != dashboardHTML {
			t.Errorf("unexpected body: %s", rewritten.Body.String())
		}
		if rewritten.Body.String() != direct.Body.String() {
			t.Error("rewritten and direct bodies differ")
		}
	})

	t.Run("missing static file is 404", func(t *testing.T) {
		rec := doRequest(server, http.MethodGet, "/nope.html")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("unknown POST is 404 with empty body", func(t *testing.T) {
		rec := doRequest(server, http.MethodPost, "/api/products")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", rec.Body.String())
		}
	})

	t.Run("OPTIONS answers preflight on any path", func(t *testing.T) {
		for _, path := range []string{"/api/products", "/anything/else"} {
			rec := doRequest(server, http.MethodOptions, path)
			if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
				t.Errorf("%s: expected empty 200, got %d %q", path, rec.Code, rec.Body.String())
			}
			if rec.Header().Get("Access-Control-Allow-Methods") == "" {
				t.Errorf("%s: missing allow methods header", path)
			}
		}
	})
}
