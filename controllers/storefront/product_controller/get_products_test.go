package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzsoft/ant2025-storefront-backend/services"
)

const testCatalog = `{
	"products": [
		{"id": 1, "name": "Lux Soap", "brand": "Lux", "price": 45, "rating": 4, "volume": "100g", "size": "S", "shippedFrom": "Dhaka"},
		{"id": 2, "name": "Rin Detergent", "brand": "Rin", "price": 120, "rating": 5, "volume": "1kg", "size": "M", "shippedFrom": "Chattogram"},
		{"id": 3, "name": "Lux Body Wash", "brand": "Lux", "price": 250, "rating": 5, "volume": "250ml", "size": "M", "shippedFrom": "Dhaka"}
	],
	"shops": []
}`

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	t.Setenv("CATALOG_FILE", path)
	t.Setenv("CATALOG_URL", "")

	r := gin.New()
	r.GET("/store/products", GetProducts)
	r.GET("/store/products/filters", GetProductFilters)
	r.GET("/store/products/:id", GetProductByID)
	return r
}

func doRequest(r *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func initTestCatalog(t *testing.T) *gin.Engine {
	r := setupRouter(t)
	services.InitCatalog()
	return r
}

func TestGetProductsRespectsFilters(t *testing.T) {
	r := initTestCatalog(t)

	w, body := doRequest(r, "/store/products?brand=Lux")
	assert.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.EqualValues(t, 2, data["total"])
	products := data["products"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, "Lux Soap", products[0].(map[string]any)["name"])
	assert.Equal(t, "Lux Body Wash", products[1].(map[string]any)["name"])
}

func TestGetProductsSearchMatchesNameOrBrand(t *testing.T) {
	r := initTestCatalog(t)

	_, body := doRequest(r, "/store/products?q=rin")
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["total"])
}

func TestGetProductsExactRating(t *testing.T) {
	r := initTestCatalog(t)

	_, body := doRequest(r, "/store/products?rating=5")
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 2, data["total"])

	_, body = doRequest(r, "/store/products?rating=4")
	data = body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["total"])
}

func TestGetProductsAllCategoriesSentinel(t *testing.T) {
	r := initTestCatalog(t)

	_, body := doRequest(r, "/store/products?category=All+Categories")
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 3, data["total"])
}

func TestGetProductsVisibleWindow(t *testing.T) {
	r := initTestCatalog(t)

	_, body := doRequest(r, "/store/products?visible=20")
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 3, data["visible"])
	assert.Equal(t, false, data["has_more"])
}

func TestGetProductFiltersFromFullCatalog(t *testing.T) {
	r := initTestCatalog(t)

	// Active filters never narrow the option lists; the endpoint takes
	// no filter params at all.
	_, body := doRequest(r, "/store/products/filters")
	data := body["data"].(map[string]any)

	brands := data["brands"].([]any)
	assert.ElementsMatch(t, []any{"Lux", "Rin"}, brands)
	categories := data["categories"].([]any)
	assert.Equal(t, "All Categories", categories[0])
}

func TestGetProductByID(t *testing.T) {
	r := initTestCatalog(t)

	w, body := doRequest(r, "/store/products/2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rin Detergent", body["data"].(map[string]any)["name"])

	w, _ = doRequest(r, "/store/products/99")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doRequest(r, "/store/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
