package profile_cache

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// Store is the persistent key-value collaborator backing the cache.
// Writes may fail silently; a miss is ("", nil).
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// FetchFunc retrieves the profile from the identity endpoint for the
// given session. The cache treats the session as read-only input.
type FetchFunc func(ctx context.Context, session *models.SessionUser) (*models.UserProfile, error)

// ProfileCache provides synchronous, cached read access to one user's
// profile. At most one network fetch is in flight at a time; concurrent
// callers share its result. A failed refresh never erases a good cached
// copy.
type ProfileCache struct {
	store Store
	key   string
	fetch FetchFunc

	mu      sync.RWMutex
	profile *models.UserProfile

	flight singleflight.Group
}

// New builds a cache for a single profile persisted under key.
func New(store Store, key string, fetch FetchFunc) *ProfileCache {
	return &ProfileCache{store: store, key: key, fetch: fetch}
}

// Cached returns the in-memory copy, falling back to the persistent
// store. Returns nil when neither source has data; a parse failure is
// treated as a miss.
func (c *ProfileCache) Cached() *models.UserProfile {
	c.mu.RLock()
	if c.profile != nil {
		defer c.mu.RUnlock()
		return c.profile
	}
	c.mu.RUnlock()

	stored, err := c.store.Get(c.key)
	if err != nil || stored == "" {
		return nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(stored), &profile); err != nil {
		// Malformed persisted data is a cache miss, not an error.
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		c.profile = &profile
	}
	return c.profile
}

// FetchFresh always goes to the identity endpoint unless a fetch is
// already in flight, in which case every caller observes that one
// request's result. Requires a valid session; returns nil without I/O
// otherwise. Failures are logged and resolve to nil.
func (c *ProfileCache) FetchFresh(ctx context.Context, session *models.SessionUser) *models.UserProfile {
	if session == nil || session.AccessToken == "" {
		return nil
	}

	// The flight entry is created when the fetch starts, shared with
	// all concurrent callers, and cleared when it settles regardless of
	// outcome, so the next call starts fresh.
	result, _, _ := c.flight.Do(c.key, func() (any, error) {
		profile, err := c.fetch(ctx, session)
		if err != nil {
			log.Printf("❌ profile cache: fetch failed: %v", err)
			return (*models.UserProfile)(nil), nil
		}

		c.mu.Lock()
		c.profile = profile
		c.mu.Unlock()

		if data, err := json.Marshal(profile); err == nil {
			// Storage write failures are swallowed; the in-memory copy
			// stays authoritative for the rest of the process lifetime.
			_ = c.store.Set(c.key, string(data))
		}
		return profile, nil
	})
	return result.(*models.UserProfile)
}

// Ensure returns the cached copy if present, otherwise fetches fresh.
func (c *ProfileCache) Ensure(ctx context.Context, session *models.SessionUser) *models.UserProfile {
	if cached := c.Cached(); cached != nil {
		return cached
	}
	return c.FetchFresh(ctx, session)
}

// Invalidate clears both the in-memory and the persisted copy.
func (c *ProfileCache) Invalidate() {
	c.mu.Lock()
	c.profile = nil
	c.mu.Unlock()
	_ = c.store.Remove(c.key)
}
