package contracts

import (
	"context"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// SessionStore keeps presentation sessions. Implementations hand out copies,
// so a caller mutates its own Session and persists it with Save.
type SessionStore interface {
	// Create stores a new session. The session id must be unused.
	Create(ctx context.Context, session *domain.Session) error

	// Get returns the session or domain.ErrSessionNotFound when it is unknown or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Save replaces a stored session. domain.ErrSessionNotFound if it has expired meanwhile.
	Save(ctx context.Context, session *domain.Session) error

	// Update applies fn to a copy of the stored session and persists the copy
	// when fn succeeds. It runs under the store lock, so concurrent updates
	// of one session do not lose writes.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)

	// Len reports the number of live sessions.
	Len() int
}
