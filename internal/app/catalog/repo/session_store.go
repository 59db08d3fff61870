package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
	"github.com/light-bringer/smartcup-service/internal/pkg/clock"
)

// MemorySessionStore keeps sessions in process memory. Expired sessions are
// evicted lazily when touched and by Sweep.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	clock    clock.Clock
}

// NewMemorySessionStore creates a store. ttl <= 0 keeps sessions forever.
func NewMemorySessionStore(ttl time.Duration, clk clock.Clock) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		clock:    clk,
	}
}

var _ contracts.SessionStore = (*MemorySessionStore)(nil)

func (s *MemorySessionStore) Create(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[session.ID()]; ok && !existing.ExpiredAt(s.clock.Now(), s.ttl) {
		return fmt.Errorf("session %s already exists", session.ID())
	}
	s.sessions[session.ID()] = session.Copy()
	return nil
}

// Get returns a copy of the session and records the read as activity, so a
// session stays alive while it is only browsed.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.ExpiredAt(now, s.ttl) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	session.Touch(now)
	return session.Copy(), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[session.ID()]
	if !ok || current.ExpiredAt(s.clock.Now(), s.ttl) {
		delete(s.sessions, session.ID())
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, session.ID())
	}
	s.sessions[session.ID()] = session.Copy()
	return nil
}

func (s *MemorySessionStore) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok || current.ExpiredAt(s.clock.Now(), s.ttl) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	updated := current.Copy()
	if err := fn(updated); err != nil {
		return nil, err
	}
	s.sessions[id] = updated
	return updated.Copy(), nil
}

func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops every expired session and returns how many were removed.
func (s *MemorySessionStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.ExpiredAt(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
