package services

import (
	"os"

	"github.com/genzsoft/ant2025-storefront-backend/catalog"
)

var storeCatalog = catalog.New()

// InitCatalog loads the product catalog from CATALOG_URL or
// CATALOG_FILE. Load failures serve an empty catalog rather than
// blocking startup.
func InitCatalog() {
	if url := os.Getenv("CATALOG_URL"); url != "" {
		storeCatalog.LoadURL(url)
		return
	}

	path := os.Getenv("CATALOG_FILE")
	if path == "" {
		path = "data/catalog.json"
	}
	storeCatalog.LoadFile(path)
}

func GetCatalog() *catalog.Catalog {
	return storeCatalog
}
