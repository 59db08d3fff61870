package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the service's Prometheus collectors. Each Registry has its
// own prometheus.Registry so tests can build one without global state.
type Registry struct {
	reg *prometheus.Registry

	CatalogItems   prometheus.Gauge
	Searches       *prometheus.CounterVec
	SearchResults  prometheus.Histogram
	SearchLatency  prometheus.Histogram
	Requests       *prometheus.CounterVec
	SessionsActive prometheus.Gauge
	SessionOps     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	catalogItems := prometheus.NewGauge(prometheus.GaugeOpts{Name: "smartcup_catalog_items"})
	searches := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "smartcup_searches_total"}, []string{"sort", "result"})
	searchResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "smartcup_search_matches",
		Buckets: []float64{0, 1, 6, 12, 24, 48, 96, 192, 384},
	})
	searchLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "smartcup_search_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "smartcup_requests_total"}, []string{"transport", "method", "code"})
	sessionsActive := prometheus.NewGauge(prometheus.GaugeOpts{Name: "smartcup_sessions_active"})
	sessionOps := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "smartcup_session_operations_total"}, []string{"op"})

	r.MustRegister(catalogItems, searches, searchResults, searchLatency, requests, sessionsActive, sessionOps)
	return &Registry{
		reg:            r,
		CatalogItems:   catalogItems,
		Searches:       searches,
		SearchResults:  searchResults,
		SearchLatency:  searchLatency,
		Requests:       requests,
		SessionsActive: sessionsActive,
		SessionOps:     sessionOps,
	}
}

// ObserveSearch records one engine evaluation.
func (r *Registry) ObserveSearch(sortKey string, matches int, seconds float64, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.Searches.WithLabelValues(sortKey, result).Inc()
	if err == nil {
		r.SearchResults.Observe(float64(matches))
		r.SearchLatency.Observe(seconds)
	}
}

// ObserveRequest counts one transport call.
func (r *Registry) ObserveRequest(transport, method, code string) {
	if r == nil {
		return
	}
	r.Requests.WithLabelValues(transport, method, code).Inc()
}

// ObserveSessionOp counts one session mutation.
func (r *Registry) ObserveSessionOp(op string) {
	if r == nil {
		return
	}
	r.SessionOps.WithLabelValues(op).Inc()
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
