package domain

import "fmt"

// itemBuilder helps create items for tests with a fluent interface
type itemBuilder struct {
	item Item
}

func newItemBuilder() *itemBuilder {
	return &itemBuilder{item: Item{
		Cafe:        "Test Cafe",
		Name:        "Americano",
		Category:    "Coffee",
		Temperature: "ICE",
		Calories:    10,
		Caffeine:    150,
		Sugar:       0,
		Fat:         0,
		Sodium:      5,
		Volume:      355,
		Price:       4500,
	}}
}

func (b *itemBuilder) cafe(v string) *itemBuilder        { b.item.Cafe = v; return b }
func (b *itemBuilder) name(v string) *itemBuilder        { b.item.Name = v; return b }
func (b *itemBuilder) category(v string) *itemBuilder    { b.item.Category = v; return b }
func (b *itemBuilder) temperature(v string) *itemBuilder { b.item.Temperature = v; return b }
func (b *itemBuilder) calories(v int) *itemBuilder       { b.item.Calories = v; return b }
func (b *itemBuilder) caffeine(v int) *itemBuilder       { b.item.Caffeine = v; return b }
func (b *itemBuilder) sugar(v int) *itemBuilder          { b.item.Sugar = v; return b }
func (b *itemBuilder) price(v int) *itemBuilder          { b.item.Price = v; return b }
func (b *itemBuilder) build() Item                       { return b.item }

// numberedCatalog returns n items named "Drink 1".."Drink n" at one cafe,
// with prices supplied by priceOf(i) (i is 1-based).
func numberedCatalog(n int, priceOf func(i int) int) *Catalog {
	items := make([]Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, newItemBuilder().
			name(fmt.Sprintf("Drink %d", i)).
			price(priceOf(i)).
			build())
	}
	return NewCatalog(items)
}

func ids(items []Item) []ItemID {
	out := make([]ItemID, 0, len(items))
	for _, it := range items {
		out = append(out, Identity(it))
	}
	return out
}
