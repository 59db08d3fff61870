package domain

import (
	"fmt"
	"strings"
)

// idSeparator joins cafe and name into an ItemID. It is not expected to occur in either field.
const idSeparator = "||"

// ItemID is the (cafe, name) identity of a catalog entry.
// It is case- and whitespace-sensitive, and not guaranteed unique when the
// source data repeats a (cafe, name) pair.
type ItemID string

// Item is one beverage entry. Items are immutable once loaded.
type Item struct {
	Cafe        string
	Name        string
	Category    string
	Temperature string

	Calories int // kcal
	Caffeine int // mg
	Sugar    int // g
	Fat      int // g
	Sodium   int // mg
	Volume   int // ml
	Price    int // currency units
}

// NewItem validates and returns an Item.
func NewItem(cafe, name, category, temperature string, calories, caffeine, sugar, fat, sodium, volume, price int) (Item, error) {
	item := Item{
		Cafe:        cafe,
		Name:        name,
		Category:    category,
		Temperature: temperature,
		Calories:    calories,
		Caffeine:    caffeine,
		Sugar:       sugar,
		Fat:         fat,
		Sodium:      sodium,
		Volume:      volume,
		Price:       price,
	}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Validate checks the item invariants.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Cafe) == "" {
		return fmt.Errorf("%w: cafe cannot be empty", ErrInvalidItem)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidItem)
	}
	for _, attr := range Attributes() {
		if v := attr.Value(it); v < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidItem, attr, v)
		}
	}
	return nil
}

// Identity returns the canonical ItemID of an item.
func Identity(it Item) ItemID {
	return NewItemID(it.Cafe, it.Name)
}

// ID is shorthand for Identity(it).
func (it Item) ID() ItemID { return Identity(it) }

// NewItemID joins a cafe and name into an ItemID.
func NewItemID(cafe, name string) ItemID {
	return ItemID(cafe + idSeparator + name)
}

// ParseItemID validates a raw identifier received from a caller.
func ParseItemID(raw string) (ItemID, error) {
	cafe, name, ok := strings.Cut(raw, idSeparator)
	if !ok || cafe == "" || name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidItemID, raw)
	}
	return ItemID(raw), nil
}

// Cafe returns the cafe half of the identity.
func (id ItemID) Cafe() string {
	cafe, _, _ := strings.Cut(string(id), idSeparator)
	return cafe
}

// Name returns the name half of the identity.
func (id ItemID) Name() string {
	_, name, _ := strings.Cut(string(id), idSeparator)
	return name
}

func (id ItemID) String() string { return string(id) }

// DisplayTitle renders "cafe: TEMP name", skipping the temperature prefix
// when the name already starts with ICE or HOT.
func (it Item) DisplayTitle() string {
	name := strings.TrimSpace(it.Name)
	upper := strings.ToUpper(name)
	prefix := ""
	if temp := strings.TrimSpace(it.Temperature); temp != "" &&
		!strings.HasPrefix(upper, "ICE ") && !strings.HasPrefix(upper, "HOT ") {
		prefix = temp + " "
	}
	return strings.TrimSpace(fmt.Sprintf("%s: %s%s", it.Cafe, prefix, name))
}
