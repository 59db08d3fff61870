package get_item

import (
	"context"
	"fmt"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// Request contains the item ID to retrieve and an optional session
// used to mark the item as a favorite.
type Request struct {
	ItemID    string
	SessionID string
}

// Query handles the get item query use case.
type Query struct {
	catalog  *domain.Catalog
	sessions contracts.SessionStore
}

// NewQuery creates a new get item query.
func NewQuery(catalog *domain.Catalog, sessions contracts.SessionStore) *Query {
	return &Query{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Execute retrieves an item by its (cafe, name) identity. When several items
// share the identity the first in catalog order wins.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ItemDTO, error) {
	id, err := domain.ParseItemID(req.ItemID)
	if err != nil {
		return nil, err
	}

	item, ok := q.catalog.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	var favorites domain.IDSet
	if req.SessionID != "" {
		session, err := q.sessions.Get(ctx, req.SessionID)
		if err != nil {
			return nil, err
		}
		favorites = session.Favorites()
	}

	return contracts.NewItemDTO(item, favorites), nil
}
