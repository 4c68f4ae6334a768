package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCooldownStore(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) (*miniredis.Miniredis, *redisCooldownStore) {
		mr := miniredis.RunT(t)
		rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		return mr, &redisCooldownStore{rdb: rdb}
	}

	t.Run("Should round-trip last-shown timestamps at millisecond precision", func(t *testing.T) {
		_, store := newStore(t)

		at := time.Now().Truncate(time.Millisecond)
		require.NoError(t, store.MarkShown(ctx, "app-1", at))

		got, found, err := store.LastShown(ctx, "app-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, got.Equal(at))
	})

	t.Run("Should report unknown applications as not found", func(t *testing.T) {
		_, store := newStore(t)

		_, found, err := store.LastShown(ctx, "never-shown")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should expire records once the suppression window passes", func(t *testing.T) {
		mr, store := newStore(t)

		require.NoError(t, store.MarkShown(ctx, "app-1", time.Now()))
		mr.FastForward(cooldownWindow + time.Second)

		_, found, err := store.LastShown(ctx, "app-1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Should namespace keys per application", func(t *testing.T) {
		mr, store := newStore(t)

		require.NoError(t, store.MarkShown(ctx, "app-1", time.Now()))
		assert.True(t, mr.Exists("notification:app-1"))
	})
}

func TestMemoryCooldownStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round-trip and miss like the redis store", func(t *testing.T) {
		store := NewMemoryCooldownStore()

		_, found, err := store.LastShown(ctx, "app-1")
		require.NoError(t, err)
		assert.False(t, found)

		at := time.Now()
		require.NoError(t, store.MarkShown(ctx, "app-1", at))

		got, found, err := store.LastShown(ctx, "app-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, got.Equal(at))
	})
}
