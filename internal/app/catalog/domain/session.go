package domain

import "time"

// DefaultRecentsLimit bounds the recently-viewed list when no limit is configured.
const DefaultRecentsLimit = 10

// Session is the per-user presentation state: favorites, recently viewed
// items and the currently open detail. The query engine never owns it; callers
// pass its favorites into a Query.
type Session struct {
	id           string
	favorites    IDSet
	recents      []ItemID
	recentsLimit int
	detail       *ItemID
	createdAt    time.Time
	lastSeen     time.Time
}

// NewSession creates an empty session.
func NewSession(id string, recentsLimit int, now time.Time) *Session {
	if recentsLimit <= 0 {
		recentsLimit = DefaultRecentsLimit
	}
	return &Session{
		id:           id,
		favorites:    NewIDSet(),
		recents:      make([]ItemID, 0, recentsLimit),
		recentsLimit: recentsLimit,
		createdAt:    now,
		lastSeen:     now,
	}
}

// Getters
func (s *Session) ID() string           { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) LastSeen() time.Time  { return s.lastSeen }

// Favorites returns a copy of the favorites set.
func (s *Session) Favorites() IDSet {
	out := make(IDSet, len(s.favorites))
	for id := range s.favorites {
		out[id] = struct{}{}
	}
	return out
}

// IsFavorite reports whether id is a favorite.
func (s *Session) IsFavorite(id ItemID) bool { return s.favorites.Contains(id) }

// Recents returns recently viewed ids, most recent first.
func (s *Session) Recents() []ItemID {
	out := make([]ItemID, len(s.recents))
	copy(out, s.recents)
	return out
}

// Detail returns the currently open item, if any.
func (s *Session) Detail() (ItemID, bool) {
	if s.detail == nil {
		return "", false
	}
	return *s.detail, true
}

// ToggleFavorite flips membership of id and returns the new membership.
func (s *Session) ToggleFavorite(id ItemID, now time.Time) bool {
	s.touch(now)
	if s.favorites.Contains(id) {
		delete(s.favorites, id)
		return false
	}
	s.favorites[id] = struct{}{}
	return true
}

// OpenDetail selects id for detail display and moves it to the front of recents.
func (s *Session) OpenDetail(id ItemID, now time.Time) {
	s.touch(now)
	s.detail = &id

	recents := make([]ItemID, 0, s.recentsLimit)
	recents = append(recents, id)
	for _, r := range s.recents {
		if r == id {
			continue
		}
		if len(recents) == s.recentsLimit {
			break
		}
		recents = append(recents, r)
	}
	s.recents = recents
}

// CloseDetail clears the detail selection.
func (s *Session) CloseDetail(now time.Time) {
	s.touch(now)
	s.detail = nil
}

// Touch records activity without changing state.
func (s *Session) Touch(now time.Time) { s.touch(now) }

// ExpiredAt reports whether the session has been idle for longer than ttl at now.
// A non-positive ttl never expires.
func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.lastSeen) > ttl
}

// Copy returns a deep copy so stores never share mutable state with callers.
func (s *Session) Copy() *Session {
	cp := *s
	cp.favorites = s.Favorites()
	cp.recents = s.Recents()
	if s.detail != nil {
		d := *s.detail
		cp.detail = &d
	}
	return &cp
}

func (s *Session) touch(now time.Time) {
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}
