package models

import "encoding/json"

// Product is a catalog product as published in the storefront data
// document. Products are read-only once loaded; `id` is unique for the
// lifetime of one loaded list.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Rating      int     `json:"rating"`
	Image       string  `json:"image,omitempty"`
	Volume      string  `json:"volume,omitempty"`
	Size        string  `json:"size,omitempty"`
	ShippedFrom string  `json:"shippedFrom,omitempty"`
}

// CatalogDocument is the shape of the storefront data source: a single
// JSON document holding the complete product and shop collections.
type CatalogDocument struct {
	Products []Product     `json:"products"`
	Shops    []CatalogShop `json:"shops"`
}

// CatalogShop is the shop card shown on the discovery surfaces (home
// page "nearby shops" strip, shops index).
type CatalogShop struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	URL      string `json:"url,omitempty"`
}

// UnmarshalJSON accepts the alias spellings seen across published
// documents: name/title, subtitle/location, url/link.
func (s *CatalogShop) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Title    string `json:"title"`
		Image    string `json:"image"`
		Subtitle string `json:"subtitle"`
		Location string `json:"location"`
		URL      string `json:"url"`
		Link     string `json:"link"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Image = raw.Image
	s.Name = firstNonEmpty(raw.Name, raw.Title)
	s.Subtitle = firstNonEmpty(raw.Subtitle, raw.Location)
	s.URL = firstNonEmpty(raw.URL, raw.Link)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
