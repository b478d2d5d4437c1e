package catalog

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// Catalog holds the complete product and shop collections, loaded once
// at startup. The filter engine only ever sees the already-deserialized
// arrays; a failed or malformed load degrades to empty collections and
// is never surfaced past this package.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
	shops    []models.CatalogShop
	facets   FacetOptions
}

func New() *Catalog {
	return &Catalog{}
}

// LoadFile reads the catalog document from a JSON file on disk.
func (ct *Catalog) LoadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ catalog: could not read %s: %v (serving empty catalog)", path, err)
		ct.set(models.CatalogDocument{})
		return
	}
	ct.loadBytes(data, path)
}

// LoadURL fetches the catalog document from an upstream REST endpoint.
func (ct *Catalog) LoadURL(url string) {
	resp, err := http.Get(url)
	if err != nil {
		log.Printf("⚠️ catalog: fetch %s failed: %v (serving empty catalog)", url, err)
		ct.set(models.CatalogDocument{})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ catalog: fetch %s returned %d (serving empty catalog)", url, resp.StatusCode)
		ct.set(models.CatalogDocument{})
		return
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("⚠️ catalog: read %s failed: %v (serving empty catalog)", url, err)
		ct.set(models.CatalogDocument{})
		return
	}
	ct.loadBytes(data, url)
}

func (ct *Catalog) loadBytes(data []byte, source string) {
	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("⚠️ catalog: malformed document at %s: %v (serving empty catalog)", source, err)
		ct.set(models.CatalogDocument{})
		return
	}
	ct.set(doc)
	log.Printf("✅ catalog loaded: %d products, %d shops", len(doc.Products), len(doc.Shops))
}

func (ct *Catalog) set(doc models.CatalogDocument) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.products = doc.Products
	ct.shops = doc.Shops
	// Facet options are derived from the full unfiltered collection and
	// stay fixed until the next load.
	ct.facets = DeriveFacets(ct.products)
}

// Products returns the full product collection in fetch order.
func (ct *Catalog) Products() []models.Product {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.products
}

// Shops returns the shop discovery cards in fetch order.
func (ct *Catalog) Shops() []models.CatalogShop {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.shops
}

// Facets returns the facet option lists for the loaded collection.
func (ct *Catalog) Facets() FacetOptions {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.facets
}
