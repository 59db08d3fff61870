package m_beverage

import (
	"time"
)

// Data represents the database model for the beverages table.
type Data struct {
	Dataset     string    `spanner:"dataset"`
	RowIndex    int64     `spanner:"row_index"`
	Cafe        string    `spanner:"cafe"`
	Name        string    `spanner:"name"`
	Category    string    `spanner:"category"`
	Temperature string    `spanner:"temperature"`
	Calories    int64     `spanner:"calories_kcal"`
	Caffeine    int64     `spanner:"caffeine_mg"`
	Sugar       int64     `spanner:"sugar_g"`
	Fat         int64     `spanner:"fat_g"`
	Sodium      int64     `spanner:"sodium_mg"`
	Price       int64     `spanner:"price"`
	Volume      int64     `spanner:"volume_ml"`
	LoadedAt    time.Time `spanner:"loaded_at"`
}
