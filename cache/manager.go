package profile_cache

import "sync"

// Persisted key prefixes. Profile and session data share one
// invalidation routine so logout cannot leave half a session behind.
const (
	profileKeyPrefix = "userProfile:"
	sessionKeyPrefix = "userData:"
)

// Manager hands out one ProfileCache per user, all sharing the same
// persistent store and fetch collaborator. It exists so each session
// owns its cache instance instead of contending over ambient globals.
type Manager struct {
	store Store
	fetch FetchFunc

	mu     sync.Mutex
	caches map[string]*ProfileCache
}

func NewManager(store Store, fetch FetchFunc) *Manager {
	return &Manager{
		store:  store,
		fetch:  fetch,
		caches: make(map[string]*ProfileCache),
	}
}

// For returns the cache for userID, creating it on first use.
func (m *Manager) For(userID string) *ProfileCache {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.caches[userID]; ok {
		return c
	}
	c := New(m.store, profileKeyPrefix+userID, m.fetch)
	m.caches[userID] = c
	return c
}

// ClearSession is the single invalidation routine for a user: it drops
// the profile cache (memory + persisted) and the persisted session
// record in one pass.
func (m *Manager) ClearSession(userID string) {
	m.For(userID).Invalidate()
	_ = m.store.Remove(sessionKeyPrefix + userID)

	m.mu.Lock()
	delete(m.caches, userID)
	m.mu.Unlock()
}
