// Package view computes read-side projections over a catalog state. The
// projector never mutates state; the store never calls the projector.
package view

import (
	"strings"

	"product_catalog/domain"
)

// Tab selects which product population a projection reads. It is ephemeral
// UI selection supplied by the caller, not part of the persisted state.
type Tab string

const (
	// TabAll projects the whole catalog.
	TabAll Tab = "all"
	// TabFavorites restricts the projection to favorited products.
	TabFavorites Tab = "favorites"
)

// Projection is one visible page of products plus the aggregates the
// presentation layer needs to render filter controls and counters. The
// Categories, Brands, MaxPrice, and OutOfStock aggregates are computed over
// the full product list, not the filtered one.
type Projection struct {
	Items          []domain.Product `json:"items"`
	Page           int              `json:"page"`
	TotalPages     int              `json:"totalPages"`
	TotalFiltered  int              `json:"totalFiltered"`
	TotalFavorites int              `json:"totalFavorites"`
	Categories     []string         `json:"categories"`
	Brands         []string         `json:"brands"`
	CategoryCount  int              `json:"categoryCount"`
	BrandCount     int              `json:"brandCount"`
	MaxPrice       float64          `json:"maxPrice"`
	OutOfStock     int              `json:"outOfStock"`
}

// Project computes the visible page for the given state and tab. Filtering
// is stable: surviving products keep the product list's relative order. A
// stored page outside [1, TotalPages] yields an empty Items slice, never an
// out-of-bounds access.
func Project(state domain.CatalogState, tab Tab) Projection {
	var filtered []domain.Product
	for _, p := range state.Products {
		if matches(state, tab, p) {
			filtered = append(filtered, p)
		}
	}

	totalPages := (len(filtered) + state.ItemsPerPage - 1) / state.ItemsPerPage
	if totalPages < 1 {
		totalPages = 1
	}

	// Bound the page before computing the slice offset: a huge stored page
	// would overflow the multiplication and index with a wrapped-around start.
	var items []domain.Product
	if state.CurrentPage >= 1 && state.CurrentPage <= totalPages {
		start := (state.CurrentPage - 1) * state.ItemsPerPage
		if start < len(filtered) {
			end := start + state.ItemsPerPage
			if end > len(filtered) {
				end = len(filtered)
			}
			items = filtered[start:end]
		}
	}

	categories := distinct(state.Products, func(p domain.Product) string { return p.Category })
	brands := distinct(state.Products, func(p domain.Product) string { return p.Brand })

	outOfStock := 0
	for _, p := range state.Products {
		if p.Stock == 0 {
			outOfStock++
		}
	}

	return Projection{
		Items:          items,
		Page:           state.CurrentPage,
		TotalPages:     totalPages,
		TotalFiltered:  len(filtered),
		TotalFavorites: len(state.Favorites),
		Categories:     categories,
		Brands:         brands,
		CategoryCount:  len(categories),
		BrandCount:     len(brands),
		MaxPrice:       domain.MaxPrice(state.Products),
		OutOfStock:     outOfStock,
	}
}

// matches applies the filter pipeline: tab, category, price range, brand
// set, rating threshold, stock, then search term. All stages are
// conjunctive.
func matches(state domain.CatalogState, tab Tab, p domain.Product) bool {
	if tab == TabFavorites && !state.IsFavorite(p.ID) {
		return false
	}
	f := state.Filters
	if f.Category != domain.CategoryAll && p.Category != f.Category {
		return false
	}
	if !f.PriceRange.Contains(p.Price) {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
		return false
	}
	if f.Rating > 0 && p.Rating < f.Rating {
		return false
	}
	if f.InStock && p.Stock == 0 {
		return false
	}
	if state.SearchTerm != "" && !matchesSearch(p, state.SearchTerm) {
		return false
	}
	return true
}

// matchesSearch reports whether term is a case-insensitive substring of the
// product's title, description, or brand.
func matchesSearch(p domain.Product, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

// distinct collects unique key values in first-seen order.
func distinct(products []domain.Product, key func(domain.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
