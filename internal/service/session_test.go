package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClockedManager returns a manager whose clock the test controls.
func newClockedManager(ttl time.Duration) (*SessionManager, *time.Time) {
	m := NewSessionManager(ttl)
	now := time.Now()
	m.now = func() time.Time { return now }
	return m, &now
}

func TestSessionManager_CreateAndGet(t *testing.T) {
	m := NewSessionManager(30 * time.Minute)

	token := m.Create(7, "diana")
	require.NotEmpty(t, token)

	ident, ok := m.Get(token)
	require.True(t, ok)
	assert.Equal(t, 7, ident.UserID)
	assert.Equal(t, "diana", ident.Username)

	// tokens are unique per session
	other := m.Create(7, "diana")
	assert.NotEqual(t, token, other)
}

func TestSessionManager_UnknownToken(t *testing.T) {
	m := NewSessionManager(30 * time.Minute)

	_, ok := m.Get("no-such-token")
	assert.False(t, ok)
}

func TestSessionManager_IdleExpiry(t *testing.T) {
	m, now := newClockedManager(30 * time.Minute)

	token := m.Create(1, "alice")

	*now = now.Add(29 * time.Minute)
	_, ok := m.Get(token)
	require.True(t, ok, "session should survive inside the idle window")

	*now = now.Add(31 * time.Minute)
	_, ok = m.Get(token)
	assert.False(t, ok, "session should expire after the idle window")

	// expired entries are dropped, not resurrected
	*now = now.Add(-time.Hour)
	_, ok = m.Get(token)
	assert.False(t, ok)
}

func TestSessionManager_GetSlidesTheDeadline(t *testing.T) {
	m, now := newClockedManager(30 * time.Minute)

	token := m.Create(1, "alice")

	// touch the session every 20 minutes; it must stay alive well past
	// the original 30-minute deadline
	for i := 0; i < 4; i++ {
		*now = now.Add(20 * time.Minute)
		_, ok := m.Get(token)
		require.True(t, ok, "touch %d should keep the session alive", i+1)
	}
}

func TestSessionManager_DeleteInvalidatesImmediately(t *testing.T) {
	m := NewSessionManager(30 * time.Minute)

	token := m.Create(1, "alice")
	m.Delete(token)

	_, ok := m.Get(token)
	assert.False(t, ok)

	// deleting again is a no-op
	m.Delete(token)
}

func TestSessionManager_PurgeExpired(t *testing.T) {
	m, now := newClockedManager(30 * time.Minute)

	stale := m.Create(1, "alice")
	*now = now.Add(10 * time.Minute)
	fresh := m.Create(2, "bob")

	m.purgeExpired(now.Add(25 * time.Minute)) // alice past deadline, bob not

	assert.Len(t, m.entries, 1)
	_, ok := m.entries[stale]
	assert.False(t, ok)
	_, ok = m.entries[fresh]
	assert.True(t, ok)
}

func TestSessionManager_RunStopsOnCancel(t *testing.T) {
	m := NewSessionManager(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestSessionManager_DefaultTTL(t *testing.T) {
	m := NewSessionManager(0)
	assert.Equal(t, DefaultSessionTTL, m.TTL())
}
