package catalog

import (
	"strings"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// PageSize is the number of filtered items revealed per "load more".
const PageSize = 20

// View modes only change rendering shape, never the result set.
const (
	ModeGrid = "grid"
	ModeList = "list"
)

// FilterState is the combined filter input. String facets are
// single-valued toggles ("" = no filter); Rating is 0 = no filter,
// otherwise an exact 1–5 match.
type FilterState struct {
	SearchTerm       string `json:"search_term"`
	SelectedCategory string `json:"selected_category"`
	Brand            string `json:"brand"`
	ShippedFrom      string `json:"shipped_from"`
	Volume           string `json:"volume"`
	Size             string `json:"size"`
	Rating           int    `json:"rating"`
}

// Matches reports whether p passes every active predicate. All
// predicates combine conjunctively; missing product fields behave as
// empty-string comparisons.
func (s FilterState) Matches(p models.Product) bool {
	if s.SearchTerm != "" {
		term := strings.ToLower(s.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) {
			return false
		}
	}
	if s.SelectedCategory != "" && s.SelectedCategory != AllCategories && p.Brand != s.SelectedCategory {
		return false
	}
	if s.Brand != "" && p.Brand != s.Brand {
		return false
	}
	if s.ShippedFrom != "" && p.ShippedFrom != s.ShippedFrom {
		return false
	}
	if s.Volume != "" && p.Volume != s.Volume {
		return false
	}
	if s.Size != "" && p.Size != s.Size {
		return false
	}
	// Exact rating match, not "at least".
	if s.Rating != 0 && p.Rating != s.Rating {
		return false
	}
	return true
}

// Apply filters products, preserving fetch order. It never re-sorts.
func Apply(products []models.Product, s FilterState) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if s.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// View is the stateful filtered window over one loaded product list:
// the filter state plus an incrementally revealed prefix. Any filter
// mutation resets the reveal back to one page so a narrowed result set
// never inherits a stale "loaded more" count.
type View struct {
	products []models.Product
	state    FilterState
	visible  int
	mode     string
}

func NewView(products []models.Product) *View {
	return &View{
		products: products,
		state:    FilterState{SelectedCategory: AllCategories},
		visible:  PageSize,
		mode:     ModeGrid,
	}
}

func (v *View) State() FilterState { return v.state }

// SetSearchTerm replaces the free-text search term.
func (v *View) SetSearchTerm(term string) {
	v.state.SearchTerm = term
	v.visible = PageSize
}

// SelectCategory replaces the category selection. Category is
// independent of the brand facet; both predicates still AND together.
func (v *View) SelectCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	v.state.SelectedCategory = category
	v.visible = PageSize
}

// ToggleBrand selects the brand facet value, or clears it when the
// value is already selected.
func (v *View) ToggleBrand(value string) {
	v.state.Brand = toggle(v.state.Brand, value)
	v.visible = PageSize
}

func (v *View) ToggleShippedFrom(value string) {
	v.state.ShippedFrom = toggle(v.state.ShippedFrom, value)
	v.visible = PageSize
}

func (v *View) ToggleVolume(value string) {
	v.state.Volume = toggle(v.state.Volume, value)
	v.visible = PageSize
}

func (v *View) ToggleSize(value string) {
	v.state.Size = toggle(v.state.Size, value)
	v.visible = PageSize
}

// ToggleRating selects an exact star rating, or clears it when the
// same rating is selected again.
func (v *View) ToggleRating(rating int) {
	if v.state.Rating == rating {
		v.state.Rating = 0
	} else {
		v.state.Rating = rating
	}
	v.visible = PageSize
}

// ClearFilters resets every filter dimension and the reveal window.
func (v *View) ClearFilters() {
	v.state = FilterState{SelectedCategory: AllCategories}
	v.visible = PageSize
}

func toggle(current, value string) string {
	if current == value {
		return ""
	}
	return value
}

// Filtered returns the full filtered result in fetch order.
func (v *View) Filtered() []models.Product {
	return Apply(v.products, v.state)
}

// Visible returns the currently revealed prefix of the filtered result.
// The window is re-derived on every call rather than accumulated.
func (v *View) Visible() []models.Product {
	filtered := v.Filtered()
	if v.visible < len(filtered) {
		return filtered[:v.visible]
	}
	return filtered
}

// VisibleCount is the current reveal budget.
func (v *View) VisibleCount() int { return v.visible }

// HasMore reports whether LoadMore would reveal anything.
func (v *View) HasMore() bool {
	return v.visible < len(v.Filtered())
}

// LoadMore reveals one more page, clamped to the filtered length.
func (v *View) LoadMore() {
	total := len(v.Filtered())
	if v.visible >= total {
		return
	}
	v.visible += PageSize
	if v.visible > total {
		v.visible = total
	}
}

// SetMode switches the display shape (grid or list). It shares the
// same sliced window and never touches the reveal count.
func (v *View) SetMode(mode string) {
	if mode != ModeGrid && mode != ModeList {
		return
	}
	v.mode = mode
}

func (v *View) Mode() string { return v.mode }
