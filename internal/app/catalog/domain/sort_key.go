package domain

import (
	"fmt"
	"sort"
)

// Direction represents sort direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// SortKey names one entry of the closed sort table.
type SortKey string

const (
	SortCatalog      SortKey = "catalog"
	SortCaloriesAsc  SortKey = "calories_asc"
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortSugarAsc     SortKey = "sugar_asc"
	SortSugarDesc    SortKey = "sugar_desc"
	SortCaffeineAsc  SortKey = "caffeine_asc"
	SortCaffeineDesc SortKey = "caffeine_desc"
	SortFatAsc       SortKey = "fat_asc"
	SortSodiumAsc    SortKey = "sodium_asc"
	SortVolumeDesc   SortKey = "volume_desc"
)

// sortSpec is the (attribute, direction) pair behind a SortKey.
// An empty attribute keeps catalog order.
type sortSpec struct {
	attr Attribute
	dir  Direction
}

var sortTable = map[SortKey]sortSpec{
	SortCatalog:      {},
	SortCaloriesAsc:  {AttrCalories, Asc},
	SortPriceAsc:     {AttrPrice, Asc},
	SortPriceDesc:    {AttrPrice, Desc},
	SortSugarAsc:     {AttrSugar, Asc},
	SortSugarDesc:    {AttrSugar, Desc},
	SortCaffeineAsc:  {AttrCaffeine, Asc},
	SortCaffeineDesc: {AttrCaffeine, Desc},
	SortFatAsc:       {AttrFat, Asc},
	SortSodiumAsc:    {AttrSodium, Asc},
	SortVolumeDesc:   {AttrVolume, Desc},
}

// ParseSortKey validates a sort key against the sort table.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(s)
	if _, ok := sortTable[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
	return key, nil
}

// SortKeys lists every recognized key in a stable order.
func SortKeys() []SortKey {
	keys := make([]SortKey, 0, len(sortTable))
	for k := range sortTable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (k SortKey) String() string { return string(k) }

// sortItems stable-sorts items in place. Ties keep their relative order.
func sortItems(items []Item, key SortKey) error {
	spec, ok := sortTable[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSortKey, string(key))
	}
	if spec.attr == "" {
		return nil
	}
	value := attributeValues[spec.attr]
	sort.SliceStable(items, func(i, j int) bool {
		if spec.dir == Desc {
			return value(items[i]) > value(items[j])
		}
		return value(items[i]) < value(items[j])
	})
	return nil
}
