package toggle_favorite

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/repo"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

func setup(t *testing.T) (*Interactor, *repo.MemorySessionStore, *clock.MockClock) {
	t.Helper()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	sessions := repo.NewMemorySessionStore(time.Hour, clk)
	require.NoError(t, sessions.Create(context.Background(), domain.NewSession("s-1", 5, start)))

	catalog := domain.NewCatalog([]domain.Item{
		{Cafe: "Mega", Name: "Latte", Temperature: "ICE"},
		{Cafe: "Mega", Name: "Mocha", Temperature: "HOT"},
	})
	logger := telemetry.NewLoggerTo(io.Discard, slog.LevelInfo)
	return NewInteractor(catalog, sessions, clk, metrics.NewRegistry(), logger), sessions, clk
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	interactor, sessions, clk := setup(t)

	clk.Advance(time.Minute)
	resp, err := interactor.Execute(ctx, &Request{SessionID: "s-1", ItemID: "Mega||Mocha"})
	require.NoError(t, err)
	assert.True(t, resp.Favorite)
	assert.Equal(t, []string{"Mega||Mocha"}, resp.Session.Favorites)

	stored, err := sessions.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, stored.IsFavorite("Mega||Mocha"))
	assert.Equal(t, clk.Now(), stored.LastSeen())

	resp, err = interactor.Execute(ctx, &Request{SessionID: "s-1", ItemID: "Mega||Mocha"})
	require.NoError(t, err)
	assert.False(t, resp.Favorite)
	assert.Empty(t, resp.Session.Favorites)
}

func TestInteractor_Errors(t *testing.T) {
	ctx := context.Background()
	interactor, sessions, _ := setup(t)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"malformed item id", &Request{SessionID: "s-1", ItemID: "Mega"}, domain.ErrInvalidItemID},
		{"item not in catalog", &Request{SessionID: "s-1", ItemID: "Mega||Tea"}, domain.ErrItemNotFound},
		{"unknown session", &Request{SessionID: "s-2", ItemID: "Mega||Latte"}, domain.ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interactor.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	stored, err := sessions.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Favorites())
}

func TestInteractor_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	interactor, sessions, _ := setup(t)

	// An even number of toggles per item leaves it unfavorited.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, id := range []string{"Mega||Latte", "Mega||Mocha"} {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				_, err := interactor.Execute(ctx, &Request{SessionID: "s-1", ItemID: id})
				assert.NoError(t, err)
			}(id)
		}
	}
	wg.Wait()

	stored, err := sessions.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Favorites())
}
