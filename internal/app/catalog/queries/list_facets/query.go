package list_facets

import (
	"context"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// Query handles the list facets query use case. The catalog never changes,
// so facets are computed once.
type Query struct {
	facets *contracts.FacetsDTO
}

// NewQuery creates a new list facets query.
func NewQuery(catalog *domain.Catalog) *Query {
	facets := catalog.Facets()

	maxima := make(map[string]int, len(facets.Max))
	for attr, v := range facets.Max {
		maxima[attr.String()] = v
	}

	keys := domain.SortKeys()
	sortKeys := make([]string, len(keys))
	for i, k := range keys {
		sortKeys[i] = string(k)
	}

	return &Query{
		facets: &contracts.FacetsDTO{
			Cafes:        facets.Cafes,
			Categories:   facets.Categories,
			Temperatures: facets.Temperatures,
			Max:          maxima,
			SortKeys:     sortKeys,
			ItemCount:    catalog.Len(),
		},
	}
}

// Execute returns a copy of the facets.
func (q *Query) Execute(ctx context.Context) *contracts.FacetsDTO {
	out := *q.facets
	out.Cafes = append([]string(nil), q.facets.Cafes...)
	out.Categories = append([]string(nil), q.facets.Categories...)
	out.Temperatures = append([]string(nil), q.facets.Temperatures...)
	out.SortKeys = append([]string(nil), q.facets.SortKeys...)
	out.Max = make(map[string]int, len(q.facets.Max))
	for k, v := range q.facets.Max {
		out.Max[k] = v
	}
	return &out
}
