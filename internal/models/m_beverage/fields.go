package m_beverage

// Field name constants for the beverages table.
const (
	TableName = "beverages"

	Dataset     = "dataset"
	RowIndex    = "row_index"
	Cafe        = "cafe"
	Name        = "name"
	Category    = "category"
	Temperature = "temperature"
	Calories    = "calories_kcal"
	Caffeine    = "caffeine_mg"
	Sugar       = "sugar_g"
	Fat         = "fat_g"
	Sodium      = "sodium_mg"
	Price       = "price"
	Volume      = "volume_ml"
	LoadedAt    = "loaded_at"
)

// Columns lists every column in storage order. Data field order matches it
// so rows decode with ToStruct.
func Columns() []string {
	return []string{
		Dataset, RowIndex, Cafe, Name, Category, Temperature,
		Calories, Caffeine, Sugar, Fat, Sodium, Price, Volume, LoadedAt,
	}
}
