package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/logger"
)

// DefaultPollInterval is how often a monitor re-fetches the user's
// applications to diff statuses.
const DefaultPollInterval = 30 * time.Second

// cooldownWindow suppresses repeat current-status alerts per application.
const cooldownWindow = 5 * time.Minute

// Monitor tracks the last-observed status of one user's applications, polls
// the backend on a fixed interval and emits alerts on transitions.
//
// The status map is a client-local cache only; whatever the backend returns
// on a poll always wins. Overlapping polls are tolerated: each poll fetches
// full state and the last completed write per application ID wins.
type Monitor struct {
	applications domain.ApplicationGateway
	sink         domain.AlertSink
	cooldowns    domain.CooldownStore
	interval     time.Duration

	userID string

	mu           sync.Mutex
	lastStatuses map[string]string
	schedule     *cron.Cron

	now func() time.Time
}

// NewMonitor creates a monitor for a single user. Pass interval <= 0 to use
// the default.
func NewMonitor(applications domain.ApplicationGateway, sink domain.AlertSink, cooldowns domain.CooldownStore, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		applications: applications,
		sink:         sink,
		cooldowns:    cooldowns,
		interval:     interval,
		lastStatuses: make(map[string]string),
		now:          time.Now,
	}
}

// Initialize fetches the user's current applications, seeds the status map
// without firing alerts, then starts background monitoring. A failed fetch is
// logged and initialization is skipped; it never returns an error because the
// whole mechanism is a best-effort convenience.
func (m *Monitor) Initialize(ctx context.Context, userID string) {
	m.mu.Lock()
	m.userID = userID
	m.mu.Unlock()

	apps, err := m.applications.Mine(ctx)
	if err != nil {
		logger.Log.Error("notifier: failed to initialize status monitor", "user_id", userID, "error", err)
		return
	}

	m.mu.Lock()
	for i := range apps {
		m.lastStatuses[apps[i].ID] = domain.NormalizeStatus(apps[i].Status)
	}
	m.mu.Unlock()

	m.StartMonitoring(ctx, userID)
}

// StartMonitoring (re)starts the fixed-period poll. Only one schedule may be
// active: starting again stops any prior schedule first, so restarts never
// stack timers.
func (m *Monitor) StartMonitoring(ctx context.Context, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userID = userID
	if m.schedule != nil {
		m.schedule.Stop()
		m.schedule = nil
	}

	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", m.interval), func() {
		m.CheckForStatusUpdates(ctx, userID)
	})
	if err != nil {
		logger.Log.Error("notifier: failed to schedule status polling", "user_id", userID, "error", err)
		return
	}
	c.Start()
	m.schedule = c
}

// StopMonitoring cancels the active poll schedule. Safe to call when nothing
// is running. An in-flight fetch is not aborted; its late cache update is
// harmless since updates are idempotent per application ID.
func (m *Monitor) StopMonitoring() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule != nil {
		m.schedule.Stop()
		m.schedule = nil
	}
}

// Active reports whether a poll schedule is currently running.
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedule != nil
}

// scheduleEntries returns how many cron entries the current schedule holds.
func (m *Monitor) scheduleEntries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.schedule == nil {
		return 0
	}
	return len(m.schedule.Entries())
}

// CheckForStatusUpdates fetches current applications and emits one alert per
// observed transition. Every cache entry is unconditionally updated to the
// fresh value; never-seen applications are seeded silently so a job the user
// just applied to between polls does not fire a false alert.
//
// Any fetch failure is logged and treated as a no-op: the cache is retained
// and the schedule keeps running. No backoff, no retry cap.
func (m *Monitor) CheckForStatusUpdates(ctx context.Context, userID string) {
	apps, err := m.applications.Mine(ctx)
	if err != nil {
		logger.Log.Warn("notifier: status poll failed", "user_id", userID, "error", err)
		return
	}

	for i := range apps {
		app := &apps[i]
		fresh := domain.NormalizeStatus(app.Status)

		m.mu.Lock()
		last, seen := m.lastStatuses[app.ID]
		m.lastStatuses[app.ID] = fresh
		m.mu.Unlock()

		if seen && last != fresh {
			m.publishTransition(ctx, app, fresh)
		}
	}
}

// ShowCurrentStatusNotifications emits alerts for a freshly loaded list,
// suppressing any application whose alert was already shown within the
// cooldown window. The cooldown store is shared across sessions: another tab
// showing the alert first suppresses it here, which is accepted behavior.
func (m *Monitor) ShowCurrentStatusNotifications(ctx context.Context, apps []domain.Application) {
	for i := range apps {
		app := &apps[i]

		message, severity, ok := currentAlert(app)
		if !ok {
			continue
		}

		now := m.now()
		lastShown, found, err := m.cooldowns.LastShown(ctx, app.ID)
		if err != nil {
			// Best-effort store; a read failure just means we may repeat an alert.
			logger.Log.Debug("notifier: cooldown lookup failed", "application_id", app.ID, "error", err)
		}
		if found && now.Sub(lastShown) < cooldownWindow {
			continue
		}

		m.publish(ctx, message, severity, defaultAlertDuration)
		if err := m.cooldowns.MarkShown(ctx, app.ID, now); err != nil {
			logger.Log.Debug("notifier: cooldown update failed", "application_id", app.ID, "error", err)
		}
	}
}

func (m *Monitor) publishTransition(ctx context.Context, app *domain.Application, newStatus string) {
	message, severity, duration := transitionAlert(app, newStatus)
	m.publish(ctx, message, severity, duration)
}

func (m *Monitor) publish(ctx context.Context, message string, severity domain.AlertSeverity, duration time.Duration) {
	m.sink.Publish(ctx, domain.Alert{
		ID:        uuid.NewString(),
		UserID:    m.userID,
		Severity:  severity,
		Message:   message,
		Duration:  duration,
		CreatedAt: m.now(),
	})
}
