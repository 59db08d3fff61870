package contracts

import (
	"time"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// ItemDTO is the presentation view of one item.
type ItemDTO struct {
	ID          string
	Title       string
	Cafe        string
	Name        string
	Category    string
	Temperature string
	Calories    int
	Caffeine    int
	Sugar       int
	Fat         int
	Sodium      int
	Volume      int
	Price       int
	Favorite    bool
}

// PageDTO is one page of search results.
type PageDTO struct {
	Items     []*ItemDTO
	Total     int
	Page      int
	PageCount int
	PageSize  int
	SortKey   string
}

// SessionDTO is the presentation view of a session. Recents resolve to
// items that still exist in the catalog; Detail is nil when nothing is open.
type SessionDTO struct {
	ID        string
	Favorites []string
	Recents   []*ItemDTO
	Detail    *ItemDTO
	CreatedAt time.Time
	LastSeen  time.Time
}

// FacetsDTO lists filter options and slider maxima.
type FacetsDTO struct {
	Cafes        []string
	Categories   []string
	Temperatures []string
	Max          map[string]int
	SortKeys     []string
	ItemCount    int
}

// NewItemDTO converts a domain item. favorites may be nil.
func NewItemDTO(item domain.Item, favorites domain.IDSet) *ItemDTO {
	id := item.ID()
	return &ItemDTO{
		ID:          id.String(),
		Title:       item.DisplayTitle(),
		Cafe:        item.Cafe,
		Name:        item.Name,
		Category:    item.Category,
		Temperature: item.Temperature,
		Calories:    item.Calories,
		Caffeine:    item.Caffeine,
		Sugar:       item.Sugar,
		Fat:         item.Fat,
		Sodium:      item.Sodium,
		Volume:      item.Volume,
		Price:       item.Price,
		Favorite:    favorites.Contains(id),
	}
}

// NewSessionDTO converts a session, resolving recents and the open detail
// against catalog. Ids no longer present in the catalog are skipped.
func NewSessionDTO(session *domain.Session, catalog *domain.Catalog) *SessionDTO {
	favorites := session.Favorites()

	ids := favorites.Sorted()
	favoriteIDs := make([]string, len(ids))
	for i, id := range ids {
		favoriteIDs[i] = id.String()
	}

	recents := make([]*ItemDTO, 0, len(session.Recents()))
	for _, id := range session.Recents() {
		if item, ok := catalog.Find(id); ok {
			recents = append(recents, NewItemDTO(item, favorites))
		}
	}

	dto := &SessionDTO{
		ID:        session.ID(),
		Favorites: favoriteIDs,
		Recents:   recents,
		CreatedAt: session.CreatedAt(),
		LastSeen:  session.LastSeen(),
	}
	if id, ok := session.Detail(); ok {
		if item, found := catalog.Find(id); found {
			dto.Detail = NewItemDTO(item, favorites)
		}
	}
	return dto
}
