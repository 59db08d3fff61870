package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/models/m_beverage"
)

// BeverageRepo implements BeverageRepository for Spanner.
type BeverageRepo struct {
	model *m_beverage.Model
}

// NewBeverageRepo creates a new BeverageRepo.
func NewBeverageRepo() contracts.BeverageRepository {
	return &BeverageRepo{model: m_beverage.NewModel()}
}

// InsertMut creates an upsert mutation for item at rowIndex.
func (r *BeverageRepo) InsertMut(dataset string, rowIndex int64, item domain.Item) *spanner.Mutation {
	return r.model.InsertMut(domainToData(dataset, rowIndex, item))
}

// ReplaceDatasetMut deletes every row of dataset.
func (r *BeverageRepo) ReplaceDatasetMut(dataset string) *spanner.Mutation {
	return r.model.DeleteDatasetMut(dataset)
}

// domainToData converts a domain Item to database Data.
func domainToData(dataset string, rowIndex int64, item domain.Item) *m_beverage.Data {
	return &m_beverage.Data{
		Dataset:     dataset,
		RowIndex:    rowIndex,
		Cafe:        item.Cafe,
		Name:        item.Name,
		Category:    item.Category,
		Temperature: item.Temperature,
		Calories:    int64(item.Calories),
		Caffeine:    int64(item.Caffeine),
		Sugar:       int64(item.Sugar),
		Fat:         int64(item.Fat),
		Sodium:      int64(item.Sodium),
		Price:       int64(item.Price),
		Volume:      int64(item.Volume),
	}
}
