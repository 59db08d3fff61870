package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// CatalogSource loads the full item list once at startup, in catalog order.
type CatalogSource interface {
	LoadItems(ctx context.Context) ([]domain.Item, error)
}

// BeverageRepository builds mutations for the beverages table.
// Repositories return mutations, they don't apply them.
type BeverageRepository interface {
	// InsertMut upserts one item at its catalog position.
	InsertMut(dataset string, rowIndex int64, item domain.Item) *spanner.Mutation

	// ReplaceDatasetMut removes every existing row of a dataset.
	ReplaceDatasetMut(dataset string) *spanner.Mutation
}
