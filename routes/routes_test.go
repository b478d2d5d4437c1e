package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

func setupStorefrontRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": [], "shops": []}`), 0o644))
	t.Setenv("CATALOG_FILE", path)
	t.Setenv("CATALOG_URL", "")
	services.InitCatalog()

	r := gin.New()
	SetupStorefrontRoutes(r.Group("/api/v1"))
	return r
}

func TestStorefrontRoutesCarryRateLimitEnvelope(t *testing.T) {
	r := setupStorefrontRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	rate, ok := body["rate_limit"].(map[string]any)
	require.True(t, ok, "storefront response missing rate_limit")
	assert.EqualValues(t, 120, rate["limit"])
	assert.EqualValues(t, 119, rate["remaining"])
}

func TestStorefrontRateLimitCountsDown(t *testing.T) {
	r := setupStorefrontRouter(t)

	var body map[string]any
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/shops", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}

	rate := body["rate_limit"].(map[string]any)
	assert.EqualValues(t, 117, rate["remaining"])
}

func TestMyShopRegisteredUnderUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupUserRoutes(r.Group("/api/v1"))

	found := false
	for _, route := range r.Routes() {
		if route.Method == http.MethodGet && route.Path == "/api/v1/user/my-shop" {
			found = true
		}
	}
	assert.True(t, found, "GET /api/v1/user/my-shop not registered")
}
