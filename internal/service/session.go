package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is the idle lifetime of a session; every authenticated
// request slides the deadline forward.
const DefaultSessionTTL = 30 * time.Minute

// SessionIdentity is the server-side record behind an opaque session token.
type SessionIdentity struct {
	UserID   int
	Username string
}

type sessionEntry struct {
	identity SessionIdentity
	deadline time.Time
}

// SessionManager maps opaque tokens to authenticated identities. The map is
// the authoritative session state: deleting an entry invalidates the token
// immediately, whatever the client still holds.
type SessionManager struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*sessionEntry
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*sessionEntry),
	}
}

// Create registers a new session for the user and returns its token.
func (m *SessionManager) Create(userID int, username string) string {
	token := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = &sessionEntry{
		identity: SessionIdentity{UserID: userID, Username: username},
		deadline: m.now().Add(m.ttl),
	}
	return token
}

// Get resolves a token to its identity. A hit slides the idle deadline
// forward; an expired entry is dropped on the spot.
func (m *SessionManager) Get(token string) (SessionIdentity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[token]
	if !ok {
		return SessionIdentity{}, false
	}
	now := m.now()
	if now.After(e.deadline) {
		delete(m.entries, token)
		return SessionIdentity{}, false
	}
	e.deadline = now.Add(m.ttl)
	return e.identity, true
}

// Delete invalidates the session immediately. Unknown tokens are a no-op.
func (m *SessionManager) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
}

// TTL returns the configured idle lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Run purges expired sessions at the given interval until ctx is canceled.
// Expiry is also enforced lazily in Get; this just keeps the map from
// accumulating abandoned entries.
func (m *SessionManager) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			m.purgeExpired(now)
		}
	}
}

func (m *SessionManager) purgeExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, e := range m.entries {
		if now.After(e.deadline) {
			delete(m.entries, token)
		}
	}
}
