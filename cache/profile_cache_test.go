package profile_cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

const testKey = "userProfile:test"

func testSession() *models.SessionUser {
	return &models.SessionUser{AccessToken: "token-abc", Role: models.RoleBuyer}
}

func fixedProfile() *models.UserProfile {
	return &models.UserProfile{Name: "Rahim Uddin", Phone: "01711000000", Role: models.RoleBuyer, Balance: 250}
}

func TestFetchFreshRequiresSession(t *testing.T) {
	called := false
	c := New(NewMemoryStore(), testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		called = true
		return fixedProfile(), nil
	})

	assert.Nil(t, c.FetchFresh(context.Background(), nil))
	assert.Nil(t, c.FetchFresh(context.Background(), &models.SessionUser{}))
	// No valid credential means no network I/O at all.
	assert.False(t, called)
}

func TestFetchFreshPopulatesMemoryAndStore(t *testing.T) {
	store := NewMemoryStore()
	c := New(store, testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		return fixedProfile(), nil
	})

	got := c.FetchFresh(context.Background(), testSession())
	require.NotNil(t, got)
	assert.Equal(t, "Rahim Uddin", got.Name)

	stored, err := store.Get(testKey)
	require.NoError(t, err)
	assert.Contains(t, stored, "Rahim Uddin")
}

func TestConcurrentFetchesShareOneRequest(t *testing.T) {
	var calls int64
	c := New(NewMemoryStore(), testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return fixedProfile(), nil
	})

	const n = 16
	results := make([]*models.UserProfile, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.FetchFresh(context.Background(), testSession())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	for _, r := range results {
		require.NotNil(t, r)
		assert.Same(t, results[0], r)
	}
}

func TestInFlightHandleClearsAfterSettle(t *testing.T) {
	var calls int64
	c := New(NewMemoryStore(), testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		atomic.AddInt64(&calls, 1)
		return fixedProfile(), nil
	})

	c.FetchFresh(context.Background(), testSession())
	c.FetchFresh(context.Background(), testSession())
	// Sequential fetches each issue their own request.
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestCachedSurvivesMemoryReset(t *testing.T) {
	store := NewMemoryStore()
	c := New(store, testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		return fixedProfile(), nil
	})
	require.NotNil(t, c.FetchFresh(context.Background(), testSession()))

	// Fresh cache instance, same durable store: the persisted copy wins.
	rebuilt := New(store, testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		return nil, errors.New("should not be called")
	})
	got := rebuilt.Cached()
	require.NotNil(t, got)
	assert.Equal(t, "Rahim Uddin", got.Name)
}

func TestFailedRefreshPreservesCache(t *testing.T) {
	store := NewMemoryStore()
	fail := false
	c := New(store, testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		if fail {
			return nil, errors.New("502 from identity endpoint")
		}
		return fixedProfile(), nil
	})
	require.NotNil(t, c.FetchFresh(context.Background(), testSession()))

	fail = true
	assert.Nil(t, c.FetchFresh(context.Background(), testSession()))

	// The failed refresh resolved to nil but the cached copy survives.
	got := c.Cached()
	require.NotNil(t, got)
	assert.Equal(t, "Rahim Uddin", got.Name)
}

func TestCachedMalformedPersistedDataIsAMiss(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(testKey, "{not json"))

	c := New(store, testKey, nil)
	assert.Nil(t, c.Cached())
}

func TestEnsurePrefersCache(t *testing.T) {
	var calls int64
	c := New(NewMemoryStore(), testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		atomic.AddInt64(&calls, 1)
		return fixedProfile(), nil
	})

	first := c.Ensure(context.Background(), testSession())
	second := c.Ensure(context.Background(), testSession())
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestInvalidateClearsBothCopies(t *testing.T) {
	store := NewMemoryStore()
	c := New(store, testKey, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		return fixedProfile(), nil
	})
	require.NotNil(t, c.FetchFresh(context.Background(), testSession()))

	c.Invalidate()
	assert.Nil(t, c.Cached())
	stored, _ := store.Get(testKey)
	assert.Empty(t, stored)
}

func TestManagerClearSession(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, func(ctx context.Context, s *models.SessionUser) (*models.UserProfile, error) {
		return fixedProfile(), nil
	})
	require.NoError(t, store.Set(sessionKeyPrefix+"u1", `{"access_token":"x"}`))
	require.NotNil(t, m.For("u1").FetchFresh(context.Background(), testSession()))

	m.ClearSession("u1")

	assert.Nil(t, m.For("u1").Cached())
	sess, _ := store.Get(sessionKeyPrefix + "u1")
	assert.Empty(t, sess)
}

func TestManagerReturnsSameCachePerUser(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)
	assert.Same(t, m.For("u1"), m.For("u1"))
	assert.NotSame(t, m.For("u1"), m.For("u2"))
}
