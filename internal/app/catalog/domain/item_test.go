package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		it, err := NewItem("Starbucks", "Latte", "Coffee", "HOT", 180, 150, 17, 6, 115, 355, 5000)
		require.NoError(t, err)
		assert.Equal(t, "Starbucks", it.Cafe)
		assert.Equal(t, 5000, it.Price)
		assert.Equal(t, 355, it.Volume)
	})

	t.Run("blank cafe returns error", func(t *testing.T) {
		_, err := NewItem("  ", "Latte", "Coffee", "HOT", 0, 0, 0, 0, 0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidItem)
	})

	t.Run("blank name returns error", func(t *testing.T) {
		_, err := NewItem("Starbucks", "\t", "Coffee", "HOT", 0, 0, 0, 0, 0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidItem)
	})

	t.Run("negative numeric returns error", func(t *testing.T) {
		_, err := NewItem("Starbucks", "Latte", "Coffee", "HOT", 0, 0, -1, 0, 0, 0, 0)
		require.ErrorIs(t, err, ErrInvalidItem)
		assert.Contains(t, err.Error(), "sugar")
	})

	t.Run("empty category and temperature are allowed", func(t *testing.T) {
		_, err := NewItem("Starbucks", "Latte", "", "", 0, 0, 0, 0, 0, 0, 0)
		assert.NoError(t, err)
	})
}

func TestIdentity(t *testing.T) {
	it := newItemBuilder().cafe("A-Cafe").name("Ice Coffee").build()

	t.Run("joins cafe and name", func(t *testing.T) {
		assert.Equal(t, ItemID("A-Cafe||Ice Coffee"), Identity(it))
		assert.Equal(t, Identity(it), it.ID())
	})

	t.Run("ignores other attributes", func(t *testing.T) {
		hot := newItemBuilder().cafe("A-Cafe").name("Ice Coffee").temperature("HOT").price(1).build()
		assert.Equal(t, Identity(it), Identity(hot))
	})

	t.Run("is case and whitespace sensitive", func(t *testing.T) {
		assert.NotEqual(t, Identity(it), Identity(newItemBuilder().cafe("a-cafe").name("Ice Coffee").build()))
		assert.NotEqual(t, Identity(it), Identity(newItemBuilder().cafe("A-Cafe").name("Ice Coffee ").build()))
	})

	t.Run("halves round trip", func(t *testing.T) {
		id := Identity(it)
		assert.Equal(t, "A-Cafe", id.Cafe())
		assert.Equal(t, "Ice Coffee", id.Name())
	})
}

func TestParseItemID(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"Starbucks||Latte", false},
		{"Starbucks||", true},
		{"||Latte", true},
		{"Starbucks Latte", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseItemID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidItemID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ItemID(tt.raw), id)
		})
	}
}

func TestItem_DisplayTitle(t *testing.T) {
	tests := []struct {
		name        string
		drink       string
		temperature string
		expected    string
	}{
		{"adds temperature", "Americano", "ICE", "Mega: ICE Americano"},
		{"skips when name starts with ICE", "Ice Americano", "ICE", "Mega: Ice Americano"},
		{"skips when name starts with HOT", "HOT Chocolate", "HOT", "Mega: HOT Chocolate"},
		{"no temperature", "Americano", "", "Mega: Americano"},
		{"trims name", "  Latte ", "HOT", "Mega: HOT Latte"},
		{"word boundary matters", "Iced Tea", "ICE", "Mega: ICE Iced Tea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := newItemBuilder().cafe("Mega").name(tt.drink).temperature(tt.temperature).build()
			assert.Equal(t, tt.expected, it.DisplayTitle())
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "icecoffee", Normalize("Ice Coffee"))
	assert.Equal(t, "icecoffee", Normalize("ICE_COFFEE"))
	assert.Equal(t, "icecoffee", Normalize("ice-coffee"))
	assert.Equal(t, "icecoffee", Normalize(" Ice\tCoffee\n"))
	assert.Equal(t, "아이스아메리카노", Normalize("아이스 아메리카노"))
	assert.Equal(t, "", Normalize(" - _ "))
}

func TestAttributes(t *testing.T) {
	it := Item{Calories: 1, Caffeine: 2, Sugar: 3, Fat: 4, Sodium: 5, Volume: 6, Price: 7}

	values := make([]int, 0, len(Attributes()))
	for _, a := range Attributes() {
		values = append(values, a.Value(it))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, values)

	a, err := ParseAttribute("sodium")
	require.NoError(t, err)
	assert.Equal(t, AttrSodium, a)

	_, err = ParseAttribute("protein")
	assert.Error(t, err)
}
