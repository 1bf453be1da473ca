package staff

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joao-fontenele/abai-springs-mock/internal/domain"
	"github.com/joao-fontenele/abai-springs-mock/internal/messaging"
	"github.com/joao-fontenele/abai-springs-mock/internal/router"
)

const maxLoginBody = 1 << 20

type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}

type Handler struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewHandler builds the staff portal handler. publisher may be nil.
func NewHandler(publisher Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		publisher: publisher,
		logger:    logger,
	}
}

type endpoints struct {
	StaffLogin     string `json:"staffLogin"`
	OwnerDashboard string `json:"ownerDashboard"`
	APIHealth      string `json:"apiHealth"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Endpoints endpoints `json:"endpoints"`
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "OK",
		Message: "Staff Portal Server is running",
		Endpoints: endpoints{
			StaffLogin:     StaffLoginPath,
			OwnerDashboard: OwnerDashboardPath,
			APIHealth:      HealthPath,
		},
	})
}

type loginSuccess struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    domain.StaffUser `json:"user"`
}

type loginFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleLogin checks the posted email, password and role against the credential
// table. Fields that are missing or not strings count as empty.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxLoginBody))
	if err != nil {
		h.logger.Error("failed to read login body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := stringField(fields, "email")
	password := stringField(fields, "password")
	role := stringField(fields, "role")

	h.logger.Info("login attempt", "email", email, "role", role)

	user, ok := authenticate(email, password, role)
	h.publishAttempt(r.Context(), email, role, ok)

	setLoginCORS(w)
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, loginFailure{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, loginSuccess{
		Success: true,
		Message: "Staff login successful",
		Token:   mockToken,
		User:    user,
	})
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func setLoginCORS(w http.ResponseWriter) {
	router.AllowOrigin(w)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (h *Handler) publishAttempt(ctx context.Context, email, role string, success bool) {
	if h.publisher == nil {
		return
	}

	event := domain.LoginAttemptEvent{
		EventID:   uuid.NewString(),
		Email:     email,
		Role:      role,
		Success:   success,
		Timestamp: time.Now().UTC(),
	}
	if err := h.publisher.Publish(ctx, messaging.TopicLoginAttempts, email, event); err != nil {
		h.logger.Error("failed to publish login attempt", "error", err, "email", email)
	}
}

// HandleNotFound answers POSTs that match no route.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if _, err := io.WriteString(w, "Not Found"); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
