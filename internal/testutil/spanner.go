package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/models/m_beverage"
)

// SetupSpannerTest creates a Spanner client against the emulator database
// and empties the beverages table before and after the test.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns SPANNER_TEST_DATABASE or the emulator default.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/smartcup-test"
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		spanner.Delete(m_beverage.TableName, spanner.AllKeys()),
	})
	require.NoError(t, err, "failed to clean database")
}

// InsertBeverages writes items into dataset at consecutive row indexes starting at 0.
func InsertBeverages(t *testing.T, client *spanner.Client, dataset string, items []domain.Item) {
	t.Helper()

	model := m_beverage.NewModel()
	muts := make([]*spanner.Mutation, 0, len(items))
	for i, it := range items {
		muts = append(muts, model.InsertMut(&m_beverage.Data{
			Dataset:     dataset,
			RowIndex:    int64(i),
			Cafe:        it.Cafe,
			Name:        it.Name,
			Category:    it.Category,
			Temperature: it.Temperature,
			Calories:    int64(it.Calories),
			Caffeine:    int64(it.Caffeine),
			Sugar:       int64(it.Sugar),
			Fat:         int64(it.Fat),
			Sodium:      int64(it.Sodium),
			Price:       int64(it.Price),
			Volume:      int64(it.Volume),
		}))
	}

	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to insert beverages")
}

// AssertRowCount asserts the number of rows in a dataset.
func AssertRowCount(t *testing.T, client *spanner.Client, dataset string, expectedCount int) {
	t.Helper()

	stmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM beverages WHERE dataset = @dataset",
		Params: map[string]interface{}{"dataset": dataset},
	}

	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in dataset %s", dataset)
}
