// Package audit records the events the mock servers publish.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/joao-fontenele/abai-springs-mock/internal/domain"
	"github.com/joao-fontenele/abai-springs-mock/internal/messaging"
)

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle logs one event. Malformed or unknown messages are logged and skipped
// so a single bad record cannot stall the consumer.
func (h *Handler) Handle(ctx context.Context, msg messaging.Message) error {
	switch msg.Topic {
	case messaging.TopicMonitoring:
		var event domain.MonitoringToggledEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			h.logger.ErrorContext(ctx, "skipping malformed monitoring event", "error", err, "key", msg.Key)
			return nil
		}
		h.logger.InfoContext(ctx, "monitoring toggled",
			"event_id", event.EventID,
			"action", event.Action,
			"timestamp", event.Timestamp,
		)

	case messaging.TopicLoginAttempts:
		var event domain.LoginAttemptEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			h.logger.ErrorContext(ctx, "skipping malformed login event", "error", err, "key", msg.Key)
			return nil
		}
		level := slog.LevelInfo
		if !event.Success {
			level = slog.LevelWarn
		}
		h.logger.Log(ctx, level, "staff login attempt",
			"event_id", event.EventID,
			"email", event.Email,
			"role", event.Role,
			"success", event.Success,
			"timestamp", event.Timestamp,
		)

	default:
		h.logger.WarnContext(ctx, "skipping event from unknown topic", "topic", msg.Topic, "key", msg.Key)
	}

	return nil
}
