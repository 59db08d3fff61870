package domain

// Catalog is the full, read-only item collection for one process lifetime.
// It is never mutated after construction, so concurrent reads need no locking.
type Catalog struct {
	items []Item
}

// NewCatalog copies items into a new Catalog, preserving their order.
func NewCatalog(items []Item) *Catalog {
	owned := make([]Item, len(items))
	copy(owned, items)
	return &Catalog{items: owned}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the first item with the given identity.
func (c *Catalog) Find(id ItemID) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	for _, it := range c.items {
		if Identity(it) == id {
			return it, true
		}
	}
	return Item{}, false
}

// Contains reports whether any item has the given identity.
func (c *Catalog) Contains(id ItemID) bool {
	_, ok := c.Find(id)
	return ok
}

// Facets describes the option lists and numeric maxima a filter UI offers.
type Facets struct {
	Cafes        []string
	Categories   []string
	Temperatures []string
	Max          map[Attribute]int
}

// Facets computes sorted unique cafes, categories and temperatures, plus the
// maximum of every numeric attribute (0 for an empty catalog). Blank values
// are not offered as options since an empty filter already means "any".
func (c *Catalog) Facets() Facets {
	cafes := map[string]struct{}{}
	categories := map[string]struct{}{}
	temps := map[string]struct{}{}
	maxima := make(map[Attribute]int, len(attributeValues))
	for _, attr := range Attributes() {
		maxima[attr] = 0
	}

	for _, it := range c.itemsOrEmpty() {
		addOption(cafes, it.Cafe)
		addOption(categories, it.Category)
		addOption(temps, it.Temperature)
		for attr, value := range attributeValues {
			if v := value(it); v > maxima[attr] {
				maxima[attr] = v
			}
		}
	}

	return Facets{
		Cafes:        sortedKeys(cafes),
		Categories:   sortedKeys(categories),
		Temperatures: sortedKeys(temps),
		Max:          maxima,
	}
}

func addOption(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func (c *Catalog) itemsOrEmpty() []Item {
	if c == nil {
		return nil
	}
	return c.items
}

