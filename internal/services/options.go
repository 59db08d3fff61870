package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/get_item"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/get_session"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/list_facets"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/search_items"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/repo"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/close_detail"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/create_session"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/open_detail"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/toggle_favorite"
	"github.com/light-bringer/smartcup-service/internal/config"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
	"github.com/light-bringer/smartcup-service/internal/transport/grpc/catalog"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	Catalog        *domain.Catalog
	Sessions       *repo.MemorySessionStore
	CatalogHandler *catalog.Handler
}

// NewServiceOptions loads the catalog from the configured source and wires up
// all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *slog.Logger, registry *metrics.Registry) (*ServiceOptions, error) {
	var (
		spannerClient *spanner.Client
		source        contracts.CatalogSource
	)

	// 1. Pick the catalog source
	switch cfg.Catalog.Source {
	case config.SourceSpanner:
		client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		spannerClient = client
		source = repo.NewSpannerSource(client, cfg.Catalog.Dataset, 0)
	default:
		source = repo.NewCSVSource(cfg.Catalog.CSVPath)
	}

	opts, err := NewServiceOptionsFromSource(ctx, cfg, source, clock.NewRealClock(), logger, registry)
	if err != nil {
		if spannerClient != nil {
			spannerClient.Close()
		}
		return nil, err
	}
	opts.SpannerClient = spannerClient

	logger.InfoContext(ctx, "catalog loaded",
		slog.String("source", cfg.Catalog.Source),
		slog.Int("items", opts.Catalog.Len()),
	)
	return opts, nil
}

// NewServiceOptionsFromSource wires the application around an explicit source and clock.
func NewServiceOptionsFromSource(
	ctx context.Context,
	cfg *config.Config,
	source contracts.CatalogSource,
	clk clock.Clock,
	logger *slog.Logger,
	registry *metrics.Registry,
) (*ServiceOptions, error) {
	// 1. Load the catalog once; it is read-only from here on
	items, err := source.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	cat := domain.NewCatalog(items)
	if registry != nil {
		registry.CatalogItems.Set(float64(cat.Len()))
	}

	// 2. Create engine and session store
	engine, err := domain.NewEngine(cfg.Catalog.PageSize)
	if err != nil {
		return nil, err
	}
	defaultSort, err := domain.ParseSortKey(string(cfg.Catalog.DefaultSort))
	if err != nil {
		return nil, fmt.Errorf("invalid default sort: %w", err)
	}
	sessions := repo.NewMemorySessionStore(cfg.Session.TTL, clk)

	// 3. Create command use cases (session writes)
	createSessionUseCase := create_session.NewInteractor(cat, sessions, cfg.Session.RecentsLimit, clk, registry, logger)
	toggleFavoriteUseCase := toggle_favorite.NewInteractor(cat, sessions, clk, registry, logger)
	openDetailUseCase := open_detail.NewInteractor(cat, sessions, clk, registry, logger)
	closeDetailUseCase := close_detail.NewInteractor(cat, sessions, clk, registry, logger)

	// 4. Create query use cases (read operations)
	searchItemsQuery := search_items.NewQuery(cat, engine, sessions, defaultSort, registry, logger)
	getItemQuery := get_item.NewQuery(cat, sessions)
	listFacetsQuery := list_facets.NewQuery(cat)
	getSessionQuery := get_session.NewQuery(cat, sessions)

	// 5. Create gRPC handler
	catalogHandler := catalog.NewHandler(
		createSessionUseCase,
		toggleFavoriteUseCase,
		openDetailUseCase,
		closeDetailUseCase,
		searchItemsQuery,
		getItemQuery,
		listFacetsQuery,
		getSessionQuery,
	)

	return &ServiceOptions{
		Catalog:        cat,
		Sessions:       sessions,
		CatalogHandler: catalogHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
