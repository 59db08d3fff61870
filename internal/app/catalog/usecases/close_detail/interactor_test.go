package close_detail

import (
	"context"
	"io"
	"log/slog"
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

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	sessions := repo.NewMemorySessionStore(time.Hour, clk)

	session := domain.NewSession("s-1", 5, start)
	session.OpenDetail("Mega||Latte", start)
	require.NoError(t, sessions.Create(ctx, session))

	catalog := domain.NewCatalog([]domain.Item{{Cafe: "Mega", Name: "Latte"}})
	interactor := NewInteractor(catalog, sessions, clk, metrics.NewRegistry(), telemetry.NewLoggerTo(io.Discard, slog.LevelInfo))

	dto, err := interactor.Execute(ctx, &Request{SessionID: "s-1"})
	require.NoError(t, err)
	assert.Nil(t, dto.Detail)
	require.Len(t, dto.Recents, 1, "closing keeps recents")

	t.Run("closing twice is a no-op", func(t *testing.T) {
		dto, err := interactor.Execute(ctx, &Request{SessionID: "s-1"})
		require.NoError(t, err)
		assert.Nil(t, dto.Detail)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := interactor.Execute(ctx, &Request{SessionID: "s-9"})
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
