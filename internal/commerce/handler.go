package commerce

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joao-fontenele/abai-springs-mock/internal/domain"
	"github.com/joao-fontenele/abai-springs-mock/internal/messaging"
	"github.com/joao-fontenele/abai-springs-mock/internal/router"
)

// timestampLayout matches the zone-less ISO-8601 the dashboard already parses.
const timestampLayout = "2006-01-02T15:04:05.000000"

type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}

type Handler struct {
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler builds the commerce API handler. publisher may be nil, in which case
// monitoring toggles are not published anywhere.
func NewHandler(publisher Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Commerce mock server is running",
		Timestamp: h.now().Format(timestampLayout),
	})
}

func (h *Handler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) HandleOutlets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, outlets)
}

func (h *Handler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, users)
}

func (h *Handler) HandleStockAlertStats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, stockAlertStats)
}

func (h *Handler) HandleStockAlerts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, stockAlerts)
}

type monitoringResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleMonitoring serves both toggle paths. Nothing is toggled: the word in
// the reply comes from the path alone, so repeated calls answer identically.
func (h *Handler) HandleMonitoring(w http.ResponseWriter, r *http.Request) {
	action := domain.MonitoringStopped
	if strings.Contains(r.URL.Path, "start") {
		action = domain.MonitoringStarted
	}

	h.publishToggle(r.Context(), action)

	h.logger.Info("monitoring toggled", "action", action)
	h.writeJSON(w, http.StatusOK, monitoringResponse{
		Success: true,
		Message: "Monitoring " + string(action),
	})
}

func (h *Handler) publishToggle(ctx context.Context, action domain.MonitoringAction) {
	if h.publisher == nil {
		return
	}

	event := domain.MonitoringToggledEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		Timestamp: h.now().UTC(),
	}
	if err := h.publisher.Publish(ctx, messaging.TopicMonitoring, string(action), event); err != nil {
		h.logger.Error("failed to publish monitoring event", "error", err, "action", action)
	}
}

// HandleNotFound answers POSTs that match no route with a bare 404.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	router.AllowOrigin(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
