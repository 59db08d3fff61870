package testutil

import (
	"context"
	"fmt"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// Beverages returns n valid items named "Drink 0".."Drink n-1" with
// increasing prices, spread over three cafes.
func Beverages(n int) []domain.Item {
	cafes := []string{"Mega", "Ediya", "Starbucks"}
	temps := []string{"ICE", "HOT"}

	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{
			Cafe:        cafes[i%len(cafes)],
			Name:        fmt.Sprintf("Drink %d", i),
			Category:    "Coffee",
			Temperature: temps[i%len(temps)],
			Calories:    10 * i,
			Caffeine:    75,
			Sugar:       i % 20,
			Fat:         i % 7,
			Sodium:      5 * i,
			Volume:      355,
			Price:       1500 + 100*i,
		}
	}
	return items
}

// StaticSource is a CatalogSource serving a fixed item list.
type StaticSource []domain.Item

func (s StaticSource) LoadItems(ctx context.Context) ([]domain.Item, error) {
	return append([]domain.Item(nil), s...), nil
}
