package m_beverage

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the beverages table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for one row. loaded_at is set to the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.Dataset,
			data.RowIndex,
			data.Cafe,
			data.Name,
			data.Category,
			data.Temperature,
			data.Calories,
			data.Caffeine,
			data.Sugar,
			data.Fat,
			data.Sodium,
			data.Price,
			data.Volume,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteDatasetMut removes every row of a dataset.
func (m *Model) DeleteDatasetMut(dataset string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{dataset}.AsPrefix())
}
