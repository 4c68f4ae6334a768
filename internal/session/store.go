package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/auth"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session: not found")

// Session is the authenticated identity persisted between requests: the
// backend-issued bearer token plus the serialized user record.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      domain.User `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the session or its underlying token is stale.
func (s *Session) Expired(now time.Time) bool {
	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now) {
		return true
	}
	return auth.TokenExpired(s.Token, now)
}

// Store persists sessions addressed by opaque IDs carried in a cookie.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// NewStore returns a redis-backed store when a client is available and an
// in-memory fallback otherwise, mirroring how the rest of the client degrades
// without redis.
func NewStore(rdb *redis.Client, ttl time.Duration) Store {
	if rdb == nil {
		return NewMemoryStore(ttl)
	}
	return &redisStore{rdb: rdb, ttl: ttl}
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *redisStore) Save(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = sess.CreatedAt.Add(s.ttl)
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal failed: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: save failed: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: get failed: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("session: unmarshal failed: %w", err)
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session: delete failed: %w", err)
	}
	return nil
}

// memoryStore keeps sessions in-process. Sessions vanish on restart, which
// simply means users sign in again.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *memoryStore) Save(_ context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = sess.CreatedAt.Add(s.ttl)
	}

	copied := *sess
	s.mu.Lock()
	s.sessions[sess.ID] = &copied
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(time.Now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
