package domain

import (
	"math"
	"sort"
)

// Unbounded is the upper bound of a range with no explicit maximum.
const Unbounded = math.MaxInt

// Range is an inclusive [Low, High] bound on a numeric attribute.
type Range struct {
	Low  int
	High int
}

// AtLeast returns the range [low, +inf).
func AtLeast(low int) Range { return Range{Low: low, High: Unbounded} }

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool { return v >= r.Low && v <= r.High }

// clamped raises a negative low bound to zero. An inverted range stays
// inverted and therefore matches nothing.
func (r Range) clamped() Range {
	if r.Low < 0 {
		r.Low = 0
	}
	return r
}

// IDSet is a set of item identities, used for favorites restriction.
type IDSet map[ItemID]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...ItemID) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports membership.
func (s IDSet) Contains(id ItemID) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order.
func (s IDSet) Sorted() []ItemID {
	ids := make([]ItemID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Query describes one filter/sort/page request.
// It provides a fluent API in which every call returns a modified copy,
// so a Query value never changes once handed to the engine.
type Query struct {
	search        string
	cafes         map[string]struct{}
	categories    map[string]struct{}
	temperature   *string
	ranges        map[Attribute]Range
	favoritesOnly bool
	favorites     IDSet
	sortKey       SortKey
	page          int
}

// NewQuery returns an unrestricted query for page 1 in catalog order.
func NewQuery() *Query {
	return &Query{
		cafes:      map[string]struct{}{},
		categories: map[string]struct{}{},
		ranges:     map[Attribute]Range{},
		sortKey:    SortCatalog,
		page:       1,
	}
}

// Matching sets the free-text search string.
func (q *Query) Matching(text string) *Query {
	nq := q.clone()
	nq.search = text
	return nq
}

// InCafes adds accepted cafes. No cafes means no restriction.
func (q *Query) InCafes(cafes ...string) *Query {
	nq := q.clone()
	for _, c := range cafes {
		nq.cafes[c] = struct{}{}
	}
	return nq
}

// InCategories adds accepted categories. No categories means no restriction.
func (q *Query) InCategories(categories ...string) *Query {
	nq := q.clone()
	for _, c := range categories {
		nq.categories[c] = struct{}{}
	}
	return nq
}

// WithTemperature requires an exact temperature match.
func (q *Query) WithTemperature(temperature string) *Query {
	nq := q.clone()
	nq.temperature = &temperature
	return nq
}

// AnyTemperature drops the temperature constraint.
func (q *Query) AnyTemperature() *Query {
	nq := q.clone()
	nq.temperature = nil
	return nq
}

// WithRange bounds attr to the inclusive range [low, high].
func (q *Query) WithRange(attr Attribute, low, high int) *Query {
	nq := q.clone()
	nq.ranges[attr] = Range{Low: low, High: high}
	return nq
}

// OnlyFavorites restricts results to items whose identity is in favorites.
func (q *Query) OnlyFavorites(favorites IDSet) *Query {
	nq := q.clone()
	nq.favoritesOnly = true
	nq.favorites = make(IDSet, len(favorites))
	for id := range favorites {
		nq.favorites[id] = struct{}{}
	}
	return nq
}

// OrderBy sets the sort key. It is validated when the query is evaluated.
func (q *Query) OrderBy(key SortKey) *Query {
	nq := q.clone()
	nq.sortKey = key
	return nq
}

// Page sets the requested 1-based page. Out-of-range values are clamped by the engine.
func (q *Query) Page(page int) *Query {
	nq := q.clone()
	nq.page = page
	return nq
}

// Getters
func (q *Query) SearchText() string     { return q.search }
func (q *Query) Cafes() []string        { return sortedKeys(q.cafes) }
func (q *Query) Categories() []string   { return sortedKeys(q.categories) }
func (q *Query) IsFavoritesOnly() bool  { return q.favoritesOnly }
func (q *Query) SortKey() SortKey       { return q.sortKey }
func (q *Query) RequestedPage() int     { return q.page }
func (q *Query) FavoriteCount() int     { return len(q.favorites) }
func (q *Query) HasTemperature() bool   { return q.temperature != nil }

// Temperature returns the required temperature and whether one is set.
func (q *Query) Temperature() (string, bool) {
	if q.temperature == nil {
		return "", false
	}
	return *q.temperature, true
}

// RangeFor returns the effective range for attr, [0, +inf) when unset.
func (q *Query) RangeFor(attr Attribute) Range {
	if r, ok := q.ranges[attr]; ok {
		return r.clamped()
	}
	return AtLeast(0)
}

// clone creates a deep copy of the query for immutability.
func (q *Query) clone() *Query {
	nq := &Query{
		search:        q.search,
		cafes:         make(map[string]struct{}, len(q.cafes)),
		categories:    make(map[string]struct{}, len(q.categories)),
		ranges:        make(map[Attribute]Range, len(q.ranges)),
		favoritesOnly: q.favoritesOnly,
		favorites:     q.favorites,
		sortKey:       q.sortKey,
		page:          q.page,
	}
	for k := range q.cafes {
		nq.cafes[k] = struct{}{}
	}
	for k := range q.categories {
		nq.categories[k] = struct{}{}
	}
	for k, v := range q.ranges {
		nq.ranges[k] = v
	}
	if q.temperature != nil {
		t := *q.temperature
		nq.temperature = &t
	}
	return nq
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
