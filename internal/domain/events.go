package domain

import "time"

type MonitoringAction string

const (
	MonitoringStarted MonitoringAction = "started"
	MonitoringStopped MonitoringAction = "stopped"
)

type MonitoringToggledEvent struct {
	EventID   string           `json:"event_id"`
	Action    MonitoringAction `json:"action"`
	Timestamp time.Time        `json:"timestamp"`
}

type LoginAttemptEvent struct {
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}
