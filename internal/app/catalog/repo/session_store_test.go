package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
)

func newTestStore(ttl time.Duration) (*MemorySessionStore, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	return NewMemorySessionStore(ttl, clk), clk
}

func TestMemorySessionStore_CreateGetSave(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(time.Hour)

	session := domain.NewSession("s-1", 5, clk.Now())
	require.NoError(t, store.Create(ctx, session))
	assert.Error(t, store.Create(ctx, session), "duplicate id")

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	got.ToggleFavorite("Mega||Latte", clk.Now())

	t.Run("get returns a copy", func(t *testing.T) {
		again, err := store.Get(ctx, "s-1")
		require.NoError(t, err)
		assert.False(t, again.IsFavorite("Mega||Latte"))
	})

	t.Run("save persists changes", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, got))
		again, err := store.Get(ctx, "s-1")
		require.NoError(t, err)
		assert.True(t, again.IsFavorite("Mega||Latte"))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.ErrorIs(t, store.Save(ctx, domain.NewSession("nope", 5, clk.Now())), domain.ErrSessionNotFound)
	})
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(time.Hour)

	require.NoError(t, store.Create(ctx, domain.NewSession("old", 5, clk.Now())))
	clk.Advance(30 * time.Minute)
	require.NoError(t, store.Create(ctx, domain.NewSession("new", 5, clk.Now())))

	clk.Advance(45 * time.Minute)

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 1, store.Len(), "expired session evicted on access")

	_, err = store.Get(ctx, "new")
	assert.NoError(t, err)

	t.Run("activity extends lifetime", func(t *testing.T) {
		s, err := store.Get(ctx, "new")
		require.NoError(t, err)
		s.Touch(clk.Now())
		require.NoError(t, store.Save(ctx, s))

		clk.Advance(50 * time.Minute)
		_, err = store.Get(ctx, "new")
		assert.NoError(t, err)
	})

	t.Run("sweep removes idle sessions", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, domain.NewSession("idle", 5, clk.Now())))
		clk.Advance(2 * time.Hour)
		assert.Equal(t, 2, store.Sweep())
		assert.Zero(t, store.Len())
	})

	t.Run("expired id can be reused", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, domain.NewSession("x", 5, clk.Now())))
		clk.Advance(2 * time.Hour)
		assert.NoError(t, store.Create(ctx, domain.NewSession("x", 5, clk.Now())))
	})
}

func TestMemorySessionStore_ReadsSlideExpiry(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(time.Hour)
	start := clk.Now()
	require.NoError(t, store.Create(ctx, domain.NewSession("browsing", 5, start)))

	for i := 0; i < 3; i++ {
		clk.Advance(45 * time.Minute)
		s, err := store.Get(ctx, "browsing")
		require.NoError(t, err, "read %d", i)
		assert.Equal(t, clk.Now(), s.LastSeen())
	}

	clk.Advance(61 * time.Minute)
	_, err := store.Get(ctx, "browsing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Zero(t, store.Len())
}

func TestMemorySessionStore_NoTTL(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(0)

	require.NoError(t, store.Create(ctx, domain.NewSession("s", 5, clk.Now())))
	clk.Advance(10000 * time.Hour)

	_, err := store.Get(ctx, "s")
	assert.NoError(t, err)
	assert.Zero(t, store.Sweep())
}

func TestMemorySessionStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s-%d", i)
			assert.NoError(t, store.Create(ctx, domain.NewSession(id, 5, clk.Now())))
			for j := 0; j < 10; j++ {
				s, err := store.Get(ctx, id)
				if !assert.NoError(t, err) {
					return
				}
				s.OpenDetail(domain.NewItemID("Mega", fmt.Sprintf("d%d", j)), clk.Now())
				assert.NoError(t, store.Save(ctx, s))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
	s, err := store.Get(ctx, "s-7")
	require.NoError(t, err)
	assert.Len(t, s.Recents(), 5)
}

func TestMemorySessionStore_Update(t *testing.T) {
	ctx := context.Background()
	store, clk := newTestStore(time.Hour)
	require.NoError(t, store.Create(ctx, domain.NewSession("s", 5, clk.Now())))

	t.Run("persists on success", func(t *testing.T) {
		got, err := store.Update(ctx, "s", func(s *domain.Session) error {
			s.ToggleFavorite("Mega||Latte", clk.Now())
			return nil
		})
		require.NoError(t, err)
		assert.True(t, got.IsFavorite("Mega||Latte"))

		stored, err := store.Get(ctx, "s")
		require.NoError(t, err)
		assert.True(t, stored.IsFavorite("Mega||Latte"))
	})

	t.Run("discards on error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := store.Update(ctx, "s", func(s *domain.Session) error {
			s.ToggleFavorite("Mega||Mocha", clk.Now())
			return boom
		})
		assert.ErrorIs(t, err, boom)

		stored, err := store.Get(ctx, "s")
		require.NoError(t, err)
		assert.False(t, stored.IsFavorite("Mega||Mocha"))
	})

	t.Run("concurrent toggles do not lose writes", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := store.Update(ctx, "s", func(s *domain.Session) error {
					s.ToggleFavorite(domain.NewItemID("Cafe", fmt.Sprintf("d%d", i)), clk.Now())
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := store.Get(ctx, "s")
		require.NoError(t, err)
		assert.Len(t, stored.Favorites(), 41)
	})

	t.Run("expired session", func(t *testing.T) {
		clk.Advance(2 * time.Hour)
		_, err := store.Update(ctx, "s", func(*domain.Session) error { return nil })
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
