package domain

import "fmt"

// Attribute names a numeric item attribute usable for range filters and sorting.
type Attribute string

const (
	AttrCalories Attribute = "calories"
	AttrCaffeine Attribute = "caffeine"
	AttrSugar    Attribute = "sugar"
	AttrFat      Attribute = "fat"
	AttrSodium   Attribute = "sodium"
	AttrVolume   Attribute = "volume"
	AttrPrice    Attribute = "price"
)

var attributeValues = map[Attribute]func(Item) int{
	AttrCalories: func(it Item) int { return it.Calories },
	AttrCaffeine: func(it Item) int { return it.Caffeine },
	AttrSugar:    func(it Item) int { return it.Sugar },
	AttrFat:      func(it Item) int { return it.Fat },
	AttrSodium:   func(it Item) int { return it.Sodium },
	AttrVolume:   func(it Item) int { return it.Volume },
	AttrPrice:    func(it Item) int { return it.Price },
}

// Attributes returns every numeric attribute in a fixed order.
func Attributes() []Attribute {
	return []Attribute{AttrCalories, AttrCaffeine, AttrSugar, AttrFat, AttrSodium, AttrVolume, AttrPrice}
}

// ParseAttribute resolves an attribute name.
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(s)
	if _, ok := attributeValues[a]; !ok {
		return "", fmt.Errorf("unknown attribute %q", s)
	}
	return a, nil
}

// Value reads the attribute from an item. Unknown attributes read as 0.
func (a Attribute) Value(it Item) int {
	if fn, ok := attributeValues[a]; ok {
		return fn(it)
	}
	return 0
}

func (a Attribute) String() string { return string(a) }
