package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/models/m_beverage"
	"github.com/light-bringer/smartcup-service/internal/pkg/query"
)

const defaultBatchSize = 500

// SpannerSource loads one dataset of the beverages table in row_index order.
type SpannerSource struct {
	client    *spanner.Client
	dataset   string
	batchSize int64
}

// NewSpannerSource creates a CatalogSource for dataset. batchSize <= 0 uses the default.
func NewSpannerSource(client *spanner.Client, dataset string, batchSize int) contracts.CatalogSource {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &SpannerSource{
		client:    client,
		dataset:   dataset,
		batchSize: int64(batchSize),
	}
}

// LoadItems pages through the dataset with keyset pagination on row_index,
// all batches reading from one consistent snapshot.
func (s *SpannerSource) LoadItems(ctx context.Context) ([]domain.Item, error) {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	base := query.From(m_beverage.TableName).
		Where(query.Eq(m_beverage.Dataset, s.dataset))

	total, err := s.count(ctx, txn, base)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, total)
	lastIndex := int64(-1)
	for {
		stmt := base.
			Select(m_beverage.Columns()...).
			Where(query.Gt(m_beverage.RowIndex, lastIndex)).
			OrderBy(m_beverage.RowIndex, query.Asc).
			Limit(s.batchSize).
			Build()

		batch, last, err := s.readBatch(ctx, txn, stmt)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
		if int64(len(batch)) < s.batchSize {
			break
		}
		lastIndex = last
	}

	return items, nil
}

func (s *SpannerSource) count(ctx context.Context, txn *spanner.ReadOnlyTransaction, base *query.Builder) (int64, error) {
	iter := txn.Query(ctx, base.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count beverages: %w", err)
	}
	var total int64
	if err := row.Column(0, &total); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return total, nil
}

func (s *SpannerSource) readBatch(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) ([]domain.Item, int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	items := make([]domain.Item, 0, s.batchSize)
	last := int64(-1)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate beverages: %w", err)
		}

		var data m_beverage.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to parse beverage: %w", err)
		}

		item, err := dataToDomain(&data)
		if err != nil {
			return nil, 0, fmt.Errorf("row %d: %w", data.RowIndex, err)
		}
		items = append(items, item)
		last = data.RowIndex
	}
	return items, last, nil
}

// dataToDomain converts database Data to a domain Item.
func dataToDomain(data *m_beverage.Data) (domain.Item, error) {
	return domain.NewItem(
		data.Cafe,
		data.Name,
		data.Category,
		data.Temperature,
		int(data.Calories),
		int(data.Caffeine),
		int(data.Sugar),
		int(data.Fat),
		int(data.Sodium),
		int(data.Volume),
		int(data.Price),
	)
}
