package domain

import (
	"fmt"
	"strings"
)

// ResultPage is one page of matching items plus pagination metadata.
type ResultPage struct {
	Total     int    // matches before pagination
	PageCount int    // always >= 1
	Page      int    // 1-based page actually served
	Items     []Item // at most the engine's page size, in sorted order
}

// Engine evaluates Queries against a Catalog. It holds only its page size
// and is safe for concurrent use.
type Engine struct {
	pageSize int
}

// NewEngine creates an engine serving pages of pageSize items.
func NewEngine(pageSize int) (*Engine, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	return &Engine{pageSize: pageSize}, nil
}

// PageSize returns the configured page size.
func (e *Engine) PageSize() int { return e.pageSize }

// predicate keeps an item when it returns true.
type predicate func(Item) bool

// Search filters, sorts and paginates catalog according to q.
//
// Stages run in a fixed order: text, categorical, numeric ranges, favorites,
// sort, paginate. Degenerate input (empty catalog, no matches, inverted
// ranges, out-of-range page) never fails; only an unknown sort key does.
func (e *Engine) Search(catalog *Catalog, q *Query) (ResultPage, error) {
	if q == nil {
		q = NewQuery()
	}
	if _, ok := sortTable[q.sortKey]; !ok {
		return ResultPage{}, fmt.Errorf("%w: %q", ErrUnknownSortKey, string(q.sortKey))
	}

	preds := buildPredicates(q)
	matched := make([]Item, 0, catalog.Len())
	for _, it := range catalog.itemsOrEmpty() {
		if keep(it, preds) {
			matched = append(matched, it)
		}
	}

	if err := sortItems(matched, q.sortKey); err != nil {
		return ResultPage{}, err
	}

	return e.paginate(matched, q.page), nil
}

// paginate clamps the requested page into [1, pageCount] and slices it out.
func (e *Engine) paginate(sorted []Item, requested int) ResultPage {
	total := len(sorted)
	pageCount := (total + e.pageSize - 1) / e.pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]Item, end-start)
	copy(items, sorted[start:end])

	return ResultPage{
		Total:     total,
		PageCount: pageCount,
		Page:      page,
		Items:     items,
	}
}

func keep(it Item, preds []predicate) bool {
	for _, p := range preds {
		if !p(it) {
			return false
		}
	}
	return true
}

// buildPredicates turns the query into its ordered predicate table.
// Unconstrained stages contribute no predicate.
func buildPredicates(q *Query) []predicate {
	var preds []predicate

	if needle := Normalize(q.search); needle != "" {
		preds = append(preds, func(it Item) bool {
			return strings.Contains(Normalize(it.Cafe), needle) ||
				strings.Contains(Normalize(it.Name), needle) ||
				strings.Contains(Normalize(it.Category), needle)
		})
	}

	if len(q.cafes) > 0 {
		cafes := q.cafes
		preds = append(preds, func(it Item) bool {
			_, ok := cafes[it.Cafe]
			return ok
		})
	}

	if len(q.categories) > 0 {
		categories := q.categories
		preds = append(preds, func(it Item) bool {
			_, ok := categories[it.Category]
			return ok
		})
	}

	if temp, ok := q.Temperature(); ok {
		preds = append(preds, func(it Item) bool { return it.Temperature == temp })
	}

	for _, attr := range Attributes() {
		if _, set := q.ranges[attr]; !set {
			continue
		}
		r := q.RangeFor(attr)
		value := attributeValues[attr]
		preds = append(preds, func(it Item) bool { return r.Contains(value(it)) })
	}

	if q.favoritesOnly {
		favorites := q.favorites
		preds = append(preds, func(it Item) bool { return favorites.Contains(Identity(it)) })
	}

	return preds
}
