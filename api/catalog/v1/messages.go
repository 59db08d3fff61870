package catalogv1

import "time"

// Range bounds one numeric attribute. A nil Max is unbounded.
type Range struct {
	Attribute string `json:"attribute"`
	Min       int    `json:"min"`
	Max       *int   `json:"max,omitempty"`
}

// Item is one beverage as shown to clients.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Cafe        string `json:"cafe"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Temperature string `json:"temperature"`
	Calories    int    `json:"calories"`
	Caffeine    int    `json:"caffeine"`
	Sugar       int    `json:"sugar"`
	Fat         int    `json:"fat"`
	Sodium      int    `json:"sodium"`
	Volume      int    `json:"volume"`
	Price       int    `json:"price"`
	Favorite    bool   `json:"favorite"`
}

// Session is the presentation state of one user.
type Session struct {
	ID        string    `json:"id"`
	Favorites []string  `json:"favorites"`
	Recents   []*Item   `json:"recents"`
	Detail    *Item     `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

type SearchItemsRequest struct {
	Search      string   `json:"search,omitempty"`
	Cafes       []string `json:"cafes,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Temperature string   `json:"temperature,omitempty"`
	Ranges      []*Range `json:"ranges,omitempty"`
	Sort        string   `json:"sort,omitempty"`
	Page        int      `json:"page,omitempty"`

	SessionID     string `json:"session_id,omitempty"`
	FavoritesOnly bool   `json:"favorites_only,omitempty"`
}

type SearchItemsResponse struct {
	Items     []*Item `json:"items"`
	Total     int     `json:"total"`
	Page      int     `json:"page"`
	PageCount int     `json:"page_count"`
	PageSize  int     `json:"page_size"`
	Sort      string  `json:"sort"`
}

type GetItemRequest struct {
	ItemID    string `json:"item_id"`
	SessionID string `json:"session_id,omitempty"`
}

type GetItemResponse struct {
	Item *Item `json:"item"`
}

type ListFacetsRequest struct{}

type ListFacetsResponse struct {
	Cafes        []string       `json:"cafes"`
	Categories   []string       `json:"categories"`
	Temperatures []string       `json:"temperatures"`
	Max          map[string]int `json:"max"`
	SortKeys     []string       `json:"sort_keys"`
	ItemCount    int            `json:"item_count"`
}

type CreateSessionRequest struct{}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// SessionResponse is returned by every call that reads or changes a session.
type SessionResponse struct {
	Session *Session `json:"session"`
}

type ToggleFavoriteRequest struct {
	SessionID string `json:"session_id"`
	ItemID    string `json:"item_id"`
}

type ToggleFavoriteResponse struct {
	Favorite bool     `json:"favorite"`
	Session  *Session `json:"session"`
}

type OpenDetailRequest struct {
	SessionID string `json:"session_id"`
	ItemID    string `json:"item_id"`
}

type CloseDetailRequest struct {
	SessionID string `json:"session_id"`
}
