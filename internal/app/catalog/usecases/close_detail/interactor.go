package close_detail

import (
	"context"
	"log/slog"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

// Request names the session whose detail view is closed.
type Request struct {
	SessionID string
}

// Interactor handles the close detail use case.
type Interactor struct {
	catalog  *domain.Catalog
	sessions contracts.SessionStore
	clock    clock.Clock
	metrics  *metrics.Registry
	logger   *slog.Logger
}

// NewInteractor creates a new close detail interactor.
func NewInteractor(
	catalog *domain.Catalog,
	sessions contracts.SessionStore,
	clock clock.Clock,
	registry *metrics.Registry,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		catalog:  catalog,
		sessions: sessions,
		clock:    clock,
		metrics:  registry,
		logger:   telemetry.WithComponent(logger, "close_detail"),
	}
}

// Execute clears the detail selection. Closing an already closed detail is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.SessionDTO, error) {
	session, err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		s.CloseDetail(i.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.metrics.ObserveSessionOp("close_detail")
	i.logger.DebugContext(ctx, "detail closed", slog.String("session_id", req.SessionID))

	return contracts.NewSessionDTO(session, i.catalog), nil
}
