//go:build integration

package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/repo"
	"github.com/light-bringer/smartcup-service/internal/pkg/committer"
	"github.com/light-bringer/smartcup-service/internal/testutil"
)

func TestSpannerSource_LoadItems(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	items := testutil.Beverages(23)
	testutil.InsertBeverages(t, client, "main", items)
	testutil.InsertBeverages(t, client, "other", testutil.Beverages(4))

	t.Run("loads one dataset in row order across batches", func(t *testing.T) {
		loaded, err := repo.NewSpannerSource(client, "main", 5).LoadItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, loaded)
	})

	t.Run("batch size equal to row count", func(t *testing.T) {
		loaded, err := repo.NewSpannerSource(client, "other", 4).LoadItems(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, 4)
	})

	t.Run("unknown dataset is empty", func(t *testing.T) {
		loaded, err := repo.NewSpannerSource(client, "missing", 0).LoadItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestBeverageRepo_ReplaceDataset(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	testutil.InsertBeverages(t, client, "main", testutil.Beverages(10))

	beverages := repo.NewBeverageRepo()
	plan := committer.NewPlan()
	plan.Add(beverages.ReplaceDatasetMut("main"))
	for i, it := range testutil.Beverages(3) {
		plan.Add(beverages.InsertMut("main", int64(i), it))
	}

	applied, err := committer.NewCommitter(client).ApplyInBatches(ctx, plan, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, applied)
	testutil.AssertRowCount(t, client, "main", 3)
}
