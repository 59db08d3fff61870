package toggle_favorite

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

// Request names the session and the item to toggle.
type Request struct {
	SessionID string
	ItemID    string
}

// Response reports the new membership and the updated session.
type Response struct {
	Favorite bool
	Session  *contracts.SessionDTO
}

// Interactor handles the toggle favorite use case.
type Interactor struct {
	catalog  *domain.Catalog
	sessions contracts.SessionStore
	clock    clock.Clock
	metrics  *metrics.Registry
	logger   *slog.Logger
}

// NewInteractor creates a new toggle favorite interactor.
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
		logger:   telemetry.WithComponent(logger, "toggle_favorite"),
	}
}

// Execute flips the favorite flag of an item in the session.
// Only items present in the catalog can be favorited.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	id, err := domain.ParseItemID(req.ItemID)
	if err != nil {
		return nil, err
	}
	if !i.catalog.Contains(id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	var favorite bool
	session, err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		favorite = s.ToggleFavorite(id, i.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.metrics.ObserveSessionOp("toggle_favorite")
	i.logger.InfoContext(ctx, "favorite toggled",
		slog.String("session_id", req.SessionID),
		slog.String("item_id", id.String()),
		slog.Bool("favorite", favorite),
	)

	return &Response{
		Favorite: favorite,
		Session:  contracts.NewSessionDTO(session, i.catalog),
	}, nil
}
