package notifier

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"go-jobboard-client/internal/domain"
)

// cooldownKey namespaces per-application cooldown records.
func cooldownKey(applicationID string) string {
	return "notification:" + applicationID
}

// NewCooldownStore returns a redis-backed store when a client is available
// and an in-memory fallback otherwise. Redis makes the cooldown durable and
// shared across sessions, like the browser storage it replaces.
func NewCooldownStore(rdb *redis.Client) domain.CooldownStore {
	if rdb == nil {
		return NewMemoryCooldownStore()
	}
	return &redisCooldownStore{rdb: rdb}
}

type redisCooldownStore struct {
	rdb *redis.Client
}

func (s *redisCooldownStore) LastShown(ctx context.Context, applicationID string) (time.Time, bool, error) {
	value, err := s.rdb.Get(ctx, cooldownKey(applicationID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}

func (s *redisCooldownStore) MarkShown(ctx context.Context, applicationID string, at time.Time) error {
	// Records expire on their own once the suppression window has passed, so
	// stale keys never accumulate.
	return s.rdb.Set(ctx, cooldownKey(applicationID), strconv.FormatInt(at.UnixMilli(), 10), cooldownWindow).Err()
}

type memoryCooldownStore struct {
	mu    sync.RWMutex
	shown map[string]time.Time
}

// NewMemoryCooldownStore keeps cooldowns in-process; they do not survive a
// restart, which only means an alert may repeat once.
func NewMemoryCooldownStore() domain.CooldownStore {
	return &memoryCooldownStore{shown: make(map[string]time.Time)}
}

func (s *memoryCooldownStore) LastShown(_ context.Context, applicationID string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.shown[applicationID]
	return at, ok, nil
}

func (s *memoryCooldownStore) MarkShown(_ context.Context, applicationID string, at time.Time) error {
	s.mu.Lock()
	s.shown[applicationID] = at
	s.mu.Unlock()
	return nil
}
