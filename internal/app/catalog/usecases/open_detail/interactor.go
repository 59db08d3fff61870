package open_detail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

// Request names the session and the item to open.
type Request struct {
	SessionID string
	ItemID    string
}

// Interactor handles the open detail use case.
type Interactor struct {
	catalog  *domain.Catalog
	sessions contracts.SessionStore
	clock    clock.Clock
	metrics  *metrics.Registry
	logger   *slog.Logger
}

// NewInteractor creates a new open detail interactor.
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
		logger:   telemetry.WithComponent(logger, "open_detail"),
	}
}

// Execute selects an item for detail display and records it as recently viewed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.SessionDTO, error) {
	id, err := domain.ParseItemID(req.ItemID)
	if err != nil {
		return nil, err
	}
	if !i.catalog.Contains(id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	session, err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		s.OpenDetail(id, i.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.metrics.ObserveSessionOp("open_detail")
	i.logger.DebugContext(ctx, "detail opened",
		slog.String("session_id", req.SessionID),
		slog.String("item_id", id.String()),
	)

	return contracts.NewSessionDTO(session, i.catalog), nil
}
