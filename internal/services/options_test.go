package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
	"github.com/light-bringer/smartcup-service/internal/config"
	"github.com/light-bringer/smartcup-service/internal/metrics"
	"github.com/light-bringer/smartcup-service/internal/telemetry"
)

func loadConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	t.Setenv("CATALOG_CSV_PATH", "../../data/smartcup.csv")
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func discardLogger() *slog.Logger {
	return telemetry.NewLoggerTo(io.Discard, slog.LevelInfo)
}

func TestNewServiceOptions_SampleCatalog(t *testing.T) {
	ctx := context.Background()
	registry := metrics.NewRegistry()

	opts, err := NewServiceOptions(ctx, loadConfig(t, nil), discardLogger(), registry)
	require.NoError(t, err)
	defer opts.Close()

	assert.Nil(t, opts.SpannerClient)
	assert.Equal(t, 36, opts.Catalog.Len())
	assert.Equal(t, 36.0, testutil.ToFloat64(registry.CatalogItems))

	resp, err := opts.CatalogHandler.SearchItems(ctx, &pb.SearchItemsRequest{Search: "americano", Sort: "price_asc"})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, 2, resp.PageCount)
	assert.Equal(t, 6, resp.PageSize)
	assert.Equal(t, "Compose Coffee: HOT Americano", resp.Items[0].Title)
	assert.Equal(t, 1500, resp.Items[0].Price)
}

func TestNewServiceOptions_ConfigErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing csv", func(t *testing.T) {
		_, err := NewServiceOptions(ctx, loadConfig(t, map[string]string{"CATALOG_CSV_PATH": "does/not/exist.csv"}), discardLogger(), nil)
		assert.Error(t, err)
	})

	t.Run("bad page size", func(t *testing.T) {
		cfg := loadConfig(t, nil)
		cfg.Catalog.PageSize = 0
		_, err := NewServiceOptions(ctx, cfg, discardLogger(), nil)
		assert.Error(t, err)
	})

	t.Run("bad default sort", func(t *testing.T) {
		cfg := loadConfig(t, nil)
		cfg.Catalog.DefaultSort = "newest"
		_, err := NewServiceOptions(ctx, cfg, discardLogger(), nil)
		assert.Error(t, err)
	})
}

// TestConcurrentSessions runs searches and session writes from many goroutines
// against one catalog.
func TestConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	opts, err := NewServiceOptions(ctx, loadConfig(t, map[string]string{"PAGE_SIZE": "4"}), discardLogger(), metrics.NewRegistry())
	require.NoError(t, err)
	h := opts.CatalogHandler

	created, err := h.CreateSession(ctx, &pb.CreateSessionRequest{})
	require.NoError(t, err)
	sessionID := created.Session.ID

	facets, err := h.ListFacets(ctx, &pb.ListFacetsRequest{})
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cafe := facets.Cafes[i%len(facets.Cafes)]

			page, err := h.SearchItems(ctx, &pb.SearchItemsRequest{Cafes: []string{cafe}, Sort: "sugar_desc"})
			if !assert.NoError(t, err) || !assert.NotEmpty(t, page.Items) {
				return
			}
			item := page.Items[0].ID

			_, err = h.OpenDetail(ctx, &pb.OpenDetailRequest{SessionID: sessionID, ItemID: item})
			assert.NoError(t, err, fmt.Sprintf("open %s", item))
			_, err = h.ToggleFavorite(ctx, &pb.ToggleFavoriteRequest{SessionID: sessionID, ItemID: item})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := h.GetSession(ctx, &pb.GetSessionRequest{SessionID: sessionID})
	require.NoError(t, err)

	// 16 workers over 6 cafes: four cafes toggled three times, two toggled twice.
	assert.Len(t, got.Session.Favorites, 4)
	assert.Len(t, got.Session.Recents, len(facets.Cafes))
}
