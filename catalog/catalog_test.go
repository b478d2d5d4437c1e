package catalog

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"products": [
		{"id": 1, "name": "Soap A", "brand": "X", "price": 150, "rating": 4, "shippedFrom": "Dhaka", "volume": "500ml", "size": "S"},
		{"id": 2, "name": "Soap B", "brand": "Y", "price": 200, "rating": 5, "shippedFrom": "Ctg", "volume": "1L", "size": "M"}
	],
	"shops": [
		{"id": 1, "name": "BD Store", "subtitle": "Dhaka", "url": "/shops/1"}
	]
}`

func writeTempDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	ct := New()
	ct.LoadFile(writeTempDocument(t, sampleDocument))

	require.Len(t, ct.Products(), 2)
	require.Len(t, ct.Shops(), 1)
	assert.Equal(t, "BD Store", ct.Shops()[0].Name)
	assert.Equal(t, []string{"X", "Y"}, ct.Facets().Brands)
}

func TestLoadFileShopAliasKeys(t *testing.T) {
	ct := New()
	ct.LoadFile(writeTempDocument(t, `{
		"products": [],
		"shops": [
			{"id": 1, "title": "Ctg Store", "location": "Agrabad", "link": "/shops/1"},
			{"id": 2, "name": "BD Store", "subtitle": "Dhaka", "url": "/shops/2"}
		]
	}`))

	require.Len(t, ct.Shops(), 2)
	assert.Equal(t, "Ctg Store", ct.Shops()[0].Name)
	assert.Equal(t, "Agrabad", ct.Shops()[0].Subtitle)
	assert.Equal(t, "/shops/1", ct.Shops()[0].URL)
	assert.Equal(t, "BD Store", ct.Shops()[1].Name)
}

func TestLoadFileMissingDegradesToEmpty(t *testing.T) {
	ct := New()
	ct.LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	assert.Empty(t, ct.Products())
	assert.Empty(t, ct.Shops())
	assert.Equal(t, []string{AllCategories}, ct.Facets().Categories)
}

func TestLoadFileMalformedDegradesToEmpty(t *testing.T) {
	ct := New()
	ct.LoadFile(writeTempDocument(t, `{"products": [`))

	assert.Empty(t, ct.Products())
	assert.Empty(t, ct.Facets().Brands)
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	ct := New()
	ct.LoadURL(srv.URL + "/data.json")
	assert.Len(t, ct.Products(), 2)
}

func TestLoadURLErrorDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ct := New()
	ct.LoadURL(srv.URL + "/data.json")
	assert.Empty(t, ct.Products())
}
