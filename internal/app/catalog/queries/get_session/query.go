package get_session

import (
	"context"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// Request contains the session ID to retrieve.
type Request struct {
	SessionID string
}

// Query handles the get session query use case.
type Query struct {
	catalog  *domain.Catalog
	sessions contracts.SessionStore
}

// NewQuery creates a new get session query.
func NewQuery(catalog *domain.Catalog, sessions contracts.SessionStore) *Query {
	return &Query{
		catalog:  catalog,
		sessions: sessions,
	}
}

// Execute retrieves a session with its recents and open detail resolved to items.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SessionDTO, error) {
	session, err := q.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	return contracts.NewSessionDTO(session, q.catalog), nil
}
