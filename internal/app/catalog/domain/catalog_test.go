package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCatalog_CopiesInput(t *testing.T) {
	items := []Item{newItemBuilder().name("Latte").build()}
	c := NewCatalog(items)

	items[0].Name = "Mocha"
	assert.Equal(t, "Latte", c.Items()[0].Name)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_Find(t *testing.T) {
	first := newItemBuilder().cafe("Mega").name("Latte").temperature("HOT").build()
	second := newItemBuilder().cafe("Mega").name("Latte").temperature("ICE").build()
	c := NewCatalog([]Item{first, second})

	found, ok := c.Find(NewItemID("Mega", "Latte"))
	assert.True(t, ok)
	assert.Equal(t, "HOT", found.Temperature, "duplicate identities resolve to the first item")

	_, ok = c.Find(NewItemID("Mega", "Mocha"))
	assert.False(t, ok)
	assert.False(t, (*Catalog)(nil).Contains("a||b"))
}

func TestCatalog_Facets(t *testing.T) {
	c := NewCatalog([]Item{
		newItemBuilder().cafe("Mega").category("Coffee").temperature("ICE").calories(300).price(2000).build(),
		newItemBuilder().cafe("Ediya").category("Tea").temperature("HOT").calories(120).price(3500).build(),
		newItemBuilder().cafe("Mega").category("Coffee").temperature("HOT").calories(40).price(1500).build(),
	})

	f := c.Facets()
	assert.Equal(t, []string{"Ediya", "Mega"}, f.Cafes)
	assert.Equal(t, []string{"Coffee", "Tea"}, f.Categories)
	assert.Equal(t, []string{"HOT", "ICE"}, f.Temperatures)
	assert.Equal(t, 300, f.Max[AttrCalories])
	assert.Equal(t, 3500, f.Max[AttrPrice])
	assert.Len(t, f.Max, len(Attributes()))
}

func TestCatalog_FacetsSkipBlankOptions(t *testing.T) {
	c := NewCatalog([]Item{
		newItemBuilder().cafe("Mega").category("").temperature("").price(4000).build(),
		newItemBuilder().cafe("Mega").category("Coffee").temperature("ICE").price(2000).build(),
	})

	f := c.Facets()
	assert.Equal(t, []string{"Mega"}, f.Cafes)
	assert.Equal(t, []string{"Coffee"}, f.Categories)
	assert.Equal(t, []string{"ICE"}, f.Temperatures)
	assert.Equal(t, 4000, f.Max[AttrPrice], "blank items still count toward maxima")
}

func TestCatalog_FacetsEmpty(t *testing.T) {
	f := NewCatalog(nil).Facets()
	assert.Empty(t, f.Cafes)
	assert.Equal(t, 0, f.Max[AttrPrice])
}
