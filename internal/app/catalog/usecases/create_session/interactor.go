package create_session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

// Interactor handles the create session use case.
type Interactor struct {
	catalog      *domain.Catalog
	sessions     contracts.SessionStore
	recentsLimit int
	clock        clock.Clock
	metrics      *metrics.Registry
	logger       *slog.Logger
}

// NewInteractor creates a new create session interactor.
func NewInteractor(
	catalog *domain.Catalog,
	sessions contracts.SessionStore,
	recentsLimit int,
	clock clock.Clock,
	registry *metrics.Registry,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		catalog:      catalog,
		sessions:     sessions,
		recentsLimit: recentsLimit,
		clock:        clock,
		metrics:      registry,
		logger:       telemetry.WithComponent(logger, "create_session"),
	}
}

// Execute creates an empty session with a random id.
func (i *Interactor) Execute(ctx context.Context) (*contracts.SessionDTO, error) {
	session := domain.NewSession(uuid.NewString(), i.recentsLimit, i.clock.Now())

	if err := i.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	i.metrics.ObserveSessionOp("create")
	if i.metrics != nil {
		i.metrics.SessionsActive.Set(float64(i.sessions.Len()))
	}
	i.logger.InfoContext(ctx, "session created", slog.String("session_id", session.ID()))

	return contracts.NewSessionDTO(session, i.catalog), nil
}
