package search_items

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

// Request carries the filter, sort and page parameters of one search.
type Request struct {
	Search      string
	Cafes       []string
	Categories  []string
	Temperature string // empty means any
	Ranges      map[domain.Attribute]domain.Range
	SortKey     string // empty means the configured default
	Page        int

	// SessionID marks favorites in the result and supplies the set for FavoritesOnly.
	SessionID     string
	FavoritesOnly bool
}

// Query handles the search items query use case.
type Query struct {
	catalog     *domain.Catalog
	engine      *domain.Engine
	sessions    contracts.SessionStore
	defaultSort domain.SortKey
	metrics     *metrics.Registry
	logger      *slog.Logger
}

// NewQuery creates a new search items query.
func NewQuery(
	catalog *domain.Catalog,
	engine *domain.Engine,
	sessions contracts.SessionStore,
	defaultSort domain.SortKey,
	registry *metrics.Registry,
	logger *slog.Logger,
) *Query {
	return &Query{
		catalog:     catalog,
		engine:      engine,
		sessions:    sessions,
		defaultSort: defaultSort,
		metrics:     registry,
		logger:      telemetry.WithComponent(logger, "search_items"),
	}
}

// Execute evaluates the request against the catalog.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.PageDTO, error) {
	ctx, span := telemetry.StartSpan(ctx, "catalog.search_items")
	defer span.End()

	started := time.Now()
	page, sortKey, favorites, err := q.search(ctx, req)
	q.metrics.ObserveSearch(string(sortKey), page.Total, time.Since(started).Seconds(), err)
	if err != nil {
		telemetry.RecordSpanError(span, err)
		q.logger.WarnContext(ctx, "search rejected", slog.String("error", err.Error()))
		return nil, err
	}

	telemetry.AddSpanAttributes(span,
		attribute.String("catalog.sort", string(sortKey)),
		attribute.Int("catalog.total", page.Total),
		attribute.Int("catalog.page", page.Page),
	)
	telemetry.SetSpanSuccess(span)
	q.logger.DebugContext(ctx, "search evaluated",
		slog.String("sort", string(sortKey)),
		slog.Int("total", page.Total),
		slog.Int("page", page.Page),
		slog.Int("page_count", page.PageCount),
	)

	items := make([]*contracts.ItemDTO, len(page.Items))
	for i, item := range page.Items {
		items[i] = contracts.NewItemDTO(item, favorites)
	}

	return &contracts.PageDTO{
		Items:     items,
		Total:     page.Total,
		Page:      page.Page,
		PageCount: page.PageCount,
		PageSize:  q.engine.PageSize(),
		SortKey:   string(sortKey),
	}, nil
}

func (q *Query) search(ctx context.Context, req *Request) (domain.ResultPage, domain.SortKey, domain.IDSet, error) {
	sortKey := q.defaultSort
	if req.SortKey != "" {
		parsed, err := domain.ParseSortKey(req.SortKey)
		if err != nil {
			return domain.ResultPage{}, domain.SortKey(req.SortKey), nil, err
		}
		sortKey = parsed
	}

	var favorites domain.IDSet
	if req.SessionID != "" {
		session, err := q.sessions.Get(ctx, req.SessionID)
		if err != nil {
			return domain.ResultPage{}, sortKey, nil, fmt.Errorf("failed to load session: %w", err)
		}
		favorites = session.Favorites()
	}

	query := domain.NewQuery().
		Matching(req.Search).
		InCafes(req.Cafes...).
		InCategories(req.Categories...).
		OrderBy(sortKey).
		Page(req.Page)

	if req.Temperature != "" {
		query = query.WithTemperature(req.Temperature)
	}
	for attr, r := range req.Ranges {
		query = query.WithRange(attr, r.Low, r.High)
	}
	if req.FavoritesOnly {
		query = query.OnlyFavorites(favorites)
	}

	page, err := q.engine.Search(q.catalog, query)
	return page, sortKey, favorites, err
}
