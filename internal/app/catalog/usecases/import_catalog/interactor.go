package import_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/pkg/committer"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

// ErrEmptyCatalog is returned when the source yields no items. Nothing is
// written, so a replace never leaves the dataset empty.
var ErrEmptyCatalog = errors.New("source catalog is empty")

// Request describes one import run.
type Request struct {
	Dataset string
	// Replace deletes the dataset's existing rows before writing.
	Replace bool
	// BatchSize bounds the mutations per commit. <= 0 commits everything at once.
	BatchSize int
}

// Response reports what was written.
type Response struct {
	Items     int
	Mutations int
}

// Applier commits a plan in batches.
type Applier interface {
	ApplyInBatches(ctx context.Context, plan *committer.CommitPlan, batchSize int) (int, error)
}

// Interactor copies a catalog from a source into the beverages table.
type Interactor struct {
	source  contracts.CatalogSource
	repo    contracts.BeverageRepository
	applier Applier
	logger  *slog.Logger
}

// NewInteractor creates a new import catalog interactor.
func NewInteractor(
	source contracts.CatalogSource,
	repo contracts.BeverageRepository,
	applier Applier,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		source:  source,
		repo:    repo,
		applier: applier,
		logger:  telemetry.WithComponent(logger, "import_catalog"),
	}
}

// Execute loads every item from the source and writes it at its catalog position.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Dataset == "" {
		return nil, fmt.Errorf("dataset is required")
	}

	items, err := i.source.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load source catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	plan := committer.NewPlan()
	if req.Replace {
		plan.Add(i.repo.ReplaceDatasetMut(req.Dataset))
	}
	for idx, item := range items {
		plan.Add(i.repo.InsertMut(req.Dataset, int64(idx), item))
	}

	applied, err := i.applier.ApplyInBatches(ctx, plan, req.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to write catalog (%d of %d mutations applied): %w", applied, plan.Count(), err)
	}

	i.logger.InfoContext(ctx, "catalog imported",
		slog.String("dataset", req.Dataset),
		slog.Int("items", len(items)),
		slog.Int("mutations", applied),
	)

	return &Response{Items: len(items), Mutations: applied}, nil
}
