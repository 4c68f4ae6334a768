package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobboard-client/internal/domain"
)

func bearerToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*miniredis.Miniredis, Store) {
		mr := miniredis.RunT(t)
		rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		return mr, NewStore(rdb, time.Hour)
	}

	t.Run("Should assign an ID and round-trip the session", func(t *testing.T) {
		_, store := newStore(t)

		sess := &Session{
			Token: "token",
			User:  domain.User{ID: "user1", Email: "u@example.com", Role: domain.RoleApplicant},
		}
		require.NoError(t, store.Save(ctx, sess))
		assert.NotEmpty(t, sess.ID)

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "user1", got.User.ID)
		assert.Equal(t, "token", got.Token)
		assert.False(t, got.ExpiresAt.IsZero())
	})

	t.Run("Should return ErrNotFound for unknown IDs", func(t *testing.T) {
		_, store := newStore(t)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should vanish once the redis TTL elapses", func(t *testing.T) {
		mr, store := newStore(t)

		sess := &Session{Token: "token", User: domain.User{ID: "user1"}}
		require.NoError(t, store.Save(ctx, sess))

		mr.FastForward(2 * time.Hour)

		_, err := store.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should delete sessions on demand", func(t *testing.T) {
		_, store := newStore(t)

		sess := &Session{Token: "token", User: domain.User{ID: "user1"}}
		require.NoError(t, store.Save(ctx, sess))
		require.NoError(t, store.Delete(ctx, sess.ID))

		_, err := store.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should expire sessions past their TTL", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)

		sess := &Session{
			Token:     "token",
			User:      domain.User{ID: "user1"},
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		require.NoError(t, store.Save(ctx, sess))

		_, err := store.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should return copies, not shared pointers", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)

		sess := &Session{Token: "token", User: domain.User{ID: "user1", Name: "Original"}}
		require.NoError(t, store.Save(ctx, sess))

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		got.User.Name = "Mutated"

		again, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "Original", again.User.Name)
	})
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()

	t.Run("Should honor the session expiry first", func(t *testing.T) {
		sess := &Session{
			Token:     bearerToken(t, now.Add(time.Hour)),
			ExpiresAt: now.Add(-time.Minute),
		}
		assert.True(t, sess.Expired(now))
	})

	t.Run("Should treat a stale bearer token as expired", func(t *testing.T) {
		sess := &Session{
			Token:     bearerToken(t, now.Add(-time.Hour)),
			ExpiresAt: now.Add(time.Hour),
		}
		assert.True(t, sess.Expired(now))
	})

	t.Run("Should stay valid while both expiries are in the future", func(t *testing.T) {
		sess := &Session{
			Token:     bearerToken(t, now.Add(time.Hour)),
			ExpiresAt: now.Add(time.Hour),
		}
		assert.False(t, sess.Expired(now))
	})
}
