package notifier

import (
	"context"
	"sync"

	"go-jobboard-client/internal/domain"
)

// maxFeedLength bounds how many undelivered alerts are kept per user.
const maxFeedLength = 50

// Feed is an in-memory per-user alert queue. The notification engine
// publishes into it; the pages drain it and render toasts. Alerts are
// transient, so losing them on restart is fine.
type Feed struct {
	mu     sync.Mutex
	queues map[string][]domain.Alert
}

func NewFeed() *Feed {
	return &Feed{queues: make(map[string][]domain.Alert)}
}

// Publish appends an alert to its user's queue, dropping the oldest entry
// when the queue is full.
func (f *Feed) Publish(_ context.Context, alert domain.Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := f.queues[alert.UserID]
	if len(queue) >= maxFeedLength {
		queue = queue[1:]
	}
	f.queues[alert.UserID] = append(queue, alert)
}

// Forget discards a user's pending alerts without delivering them.
func (f *Feed) Forget(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.queues, userID)
}

// Drain returns and clears all pending alerts for a user.
func (f *Feed) Drain(userID string) []domain.Alert {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := f.queues[userID]
	if len(queue) == 0 {
		return nil
	}
	delete(f.queues, userID)
	return queue
}
