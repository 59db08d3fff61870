package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSearch(t *testing.T) {
	r := NewRegistry()

	r.ObserveSearch("price_asc", 14, 0.002, nil)
	r.ObserveSearch("price_asc", 3, 0.001, nil)
	r.ObserveSearch("bogus", 0, 0, errors.New("unknown sort key"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Searches.WithLabelValues("price_asc", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Searches.WithLabelValues("bogus", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.SearchResults))
}

func TestObserveRequestAndSessionOps(t *testing.T) {
	r := NewRegistry()

	r.ObserveRequest("grpc", "SearchItems", "OK")
	r.ObserveRequest("http", "GET /api/v1/items", "200")
	r.ObserveSessionOp("toggle_favorite")
	r.SessionsActive.Set(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Requests.WithLabelValues("grpc", "SearchItems", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SessionOps.WithLabelValues("toggle_favorite")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.SessionsActive))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveSearch("catalog", 1, 0, nil)
		r.ObserveRequest("http", "GET", "200")
		r.ObserveSessionOp("open_detail")
	})
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.CatalogItems.Set(42)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "smartcup_catalog_items 42")
}
