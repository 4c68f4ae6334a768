package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/internal/notifier"
)

type NotificationHandler struct {
	feed *notifier.Feed
}

func NewNotificationHandler(protected *gin.RouterGroup, feed *notifier.Feed) {
	handler := &NotificationHandler{feed: feed}

	protected.GET("/v1/notifications", handler.Pending)
}

// alertView is the wire shape the toast script consumes. Durations go out in
// milliseconds to match the autoClose convention on the page side.
type alertView struct {
	ID         string    `json:"id"`
	Severity   string    `json:"severity"`
	Message    string    `json:"message"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Pending drains and returns the caller's queued alerts. Polled by the toast
// script on every page.
func (h *NotificationHandler) Pending(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		response.Success(c, http.StatusOK, "No pending notifications", []alertView{})
		return
	}

	alerts := h.feed.Drain(sess.User.ID)
	views := make([]alertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, alertView{
			ID:         alert.ID,
			Severity:   string(alert.Severity),
			Message:    alert.Message,
			DurationMS: alert.Duration.Milliseconds(),
			CreatedAt:  alert.CreatedAt,
		})
	}

	response.Success(c, http.StatusOK, "Pending notifications", views)
}
