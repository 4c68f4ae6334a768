package notifier

import (
	"context"
	"sync"
	"time"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/logger"
)

// Manager owns one Monitor per authenticated applicant and ties monitor
// lifecycle to session lifetime: started on login, stopped on logout or
// shutdown. Replaces the module-level singleton the original client used.
type Manager struct {
	applications domain.ApplicationGateway
	sink         domain.AlertSink
	cooldowns    domain.CooldownStore
	interval     time.Duration

	mu       sync.Mutex
	monitors map[string]*Monitor
}

func NewManager(applications domain.ApplicationGateway, sink domain.AlertSink, cooldowns domain.CooldownStore, interval time.Duration) *Manager {
	return &Manager{
		applications: applications,
		sink:         sink,
		cooldowns:    cooldowns,
		interval:     interval,
		monitors:     make(map[string]*Monitor),
	}
}

// StartFor begins monitoring for a user. The token is detached from the
// request context so polling outlives the login request. Starting again for
// the same user replaces the previous monitor.
func (mgr *Manager) StartFor(userID, token string) {
	mgr.mu.Lock()
	if existing, ok := mgr.monitors[userID]; ok {
		existing.StopMonitoring()
	}
	monitor := NewMonitor(mgr.applications, mgr.sink, mgr.cooldowns, mgr.interval)
	mgr.monitors[userID] = monitor
	mgr.mu.Unlock()

	ctx := domain.WithToken(context.Background(), token)
	// Seeding completes (or fails) before the first periodic poll fires.
	go monitor.Initialize(ctx, userID)

	logger.Log.Info("notifier: monitoring started", "user_id", userID)
}

// MonitorFor returns the user's active monitor, or nil.
func (mgr *Manager) MonitorFor(userID string) *Monitor {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.monitors[userID]
}

// StopFor tears down a user's monitor. No-op when none is running.
func (mgr *Manager) StopFor(userID string) {
	mgr.mu.Lock()
	monitor, ok := mgr.monitors[userID]
	if ok {
		delete(mgr.monitors, userID)
	}
	mgr.mu.Unlock()

	if ok {
		monitor.StopMonitoring()
		mgr.sink.Forget(userID)
		logger.Log.Info("notifier: monitoring stopped", "user_id", userID)
	}
}

// StopAll stops every active monitor. Called on shutdown.
func (mgr *Manager) StopAll() {
	mgr.mu.Lock()
	monitors := make(map[string]*Monitor, len(mgr.monitors))
	for userID, m := range mgr.monitors {
		monitors[userID] = m
	}
	mgr.monitors = make(map[string]*Monitor)
	mgr.mu.Unlock()

	for userID, m := range monitors {
		m.StopMonitoring()
		mgr.sink.Forget(userID)
	}
}
