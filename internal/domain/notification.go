package domain

import (
	"context"
	"time"
)

// Alert severity levels, mirroring toast styles in the rendered pages
type AlertSeverity string

const (
	AlertInfo    AlertSeverity = "info"
	AlertSuccess AlertSeverity = "success"
	AlertWarning AlertSeverity = "warning"
	AlertError   AlertSeverity = "error"
)

// Alert is a transient user-facing notification
type Alert struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Duration  time.Duration `json:"duration_ms"`
	CreatedAt time.Time     `json:"created_at"`
}

// AlertSink receives alerts emitted by the notification engine.
// The delivery layer implements it with a per-user feed drained by the pages.
// Forget discards a user's undelivered alerts when monitoring stops, so
// queues do not pile up for users who never poll again.
type AlertSink interface {
	Publish(ctx context.Context, alert Alert)
	Forget(userID string)
}

// CooldownStore persists per-application last-shown timestamps so repeat
// alerts for the same application are suppressed across page reloads.
// Best-effort: shared storage means another session may refresh the record
// first, suppressing the alert here. That is accepted behavior.
type CooldownStore interface {
	LastShown(ctx context.Context, applicationID string) (time.Time, bool, error)
	MarkShown(ctx context.Context, applicationID string, at time.Time) error
}
