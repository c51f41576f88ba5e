// Package store owns the session catalog state and its transitions.
package store

import (
	"product_catalog/domain"
)

// Catalog holds the single authoritative CatalogState for one session and
// exposes the state transitions. All transitions are total: malformed or
// inapplicable input results in a no-op, never a panic or an error. There is
// one logical thread of control per session, so no locking is needed; every
// transition leaves the state fully consistent before returning.
type Catalog struct {
	state domain.CatalogState
}

// NewCatalog constructs a Catalog seeded with the given products.
func NewCatalog(products []domain.Product) *Catalog {
	return &Catalog{state: domain.NewCatalogState(products)}
}

// State returns the current state. Callers treat the result as read-only;
// all mutation goes through the named transitions.
func (c *Catalog) State() domain.CatalogState {
	return c.state
}

// ToggleFavorite flips membership of productId in the favorite set. Toggling
// an id with no matching product is allowed; the id is inert until a product
// with that id exists.
func (c *Catalog) ToggleFavorite(productID int) {
	if _, ok := c.state.Favorites[productID]; ok {
		delete(c.state.Favorites, productID)
	} else {
		c.state.Favorites[productID] = struct{}{}
	}
}

// AddToCart increments the quantity of the existing line for product, or
// appends a new line with quantity 1 at the end of the cart.
func (c *Catalog) AddToCart(product domain.Product) {
	for i := range c.state.Cart {
		if c.state.Cart[i].Product.ID == product.ID {
			c.state.Cart[i].Quantity++
			return
		}
	}
	c.state.Cart = append(c.state.Cart, domain.CartLine{Product: product, Quantity: 1})
}

// RemoveFromCart deletes the cart line for productID if present. The cart is
// rebuilt into a fresh slice so previously returned State snapshots keep
// their contents.
func (c *Catalog) RemoveFromCart(productID int) {
	cart := make([]domain.CartLine, 0, len(c.state.Cart))
	for _, line := range c.state.Cart {
		if line.Product.ID != productID {
			cart = append(cart, line)
		}
	}
	c.state.Cart = cart
}

// UpdateCartQuantity sets the quantity of the line for productID to exactly
// quantity. A quantity of zero or less removes the line. If no line exists
// the call is a no-op: only AddToCart creates lines.
func (c *Catalog) UpdateCartQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveFromCart(productID)
		return
	}
	for i := range c.state.Cart {
		if c.state.Cart[i].Product.ID == productID {
			c.state.Cart[i].Quantity = quantity
			return
		}
	}
}

// SetCategoryFilter replaces the category filter and resets to page 1.
func (c *Catalog) SetCategoryFilter(category string) {
	c.state.Filters.Category = category
	c.resetPage()
}

// SetPriceFilter replaces the price range and resets to page 1. An inverted
// range is normalized so that Low <= High always holds in stored state.
func (c *Catalog) SetPriceFilter(r domain.PriceRange) {
	if r.Low > r.High {
		r.Low, r.High = r.High, r.Low
	}
	c.state.Filters.PriceRange = r
	c.resetPage()
}

// SetBrandsFilter replaces the accepted brand set and resets to page 1. An
// empty set means no brand restriction.
func (c *Catalog) SetBrandsFilter(brands []string) {
	c.state.Filters.Brands = append([]string(nil), brands...)
	c.resetPage()
}

// SetRatingFilter replaces the minimum rating threshold and resets to page 1.
func (c *Catalog) SetRatingFilter(threshold float64) {
	c.state.Filters.Rating = threshold
	c.resetPage()
}

// SetInStockFilter replaces the in-stock-only flag and resets to page 1.
func (c *Catalog) SetInStockFilter(inStock bool) {
	c.state.Filters.InStock = inStock
	c.resetPage()
}

// SetSearchTerm replaces the search term and resets to page 1.
func (c *Catalog) SetSearchTerm(term string) {
	c.state.SearchTerm = term
	c.resetPage()
}

// ClearFilters resets the filter set to its default over the current product
// list, clears the search term, and resets to page 1.
func (c *Catalog) ClearFilters() {
	c.state.Filters = domain.DefaultFilters(c.state.Products)
	c.state.SearchTerm = ""
	c.resetPage()
}

// SetCurrentPage stores page as-is. Out-of-range values are permitted; the
// projector degrades to an empty page rather than erroring.
func (c *Catalog) SetCurrentPage(page int) {
	c.state.CurrentPage = page
}

// SetItemsPerPage replaces the page size and resets to page 1. Non-positive
// sizes are ignored so that stored state never yields a divide-by-zero in
// page-count math.
func (c *Catalog) SetItemsPerPage(size int) {
	if size <= 0 {
		return
	}
	c.state.ItemsPerPage = size
	c.resetPage()
}

// AddProduct assigns the next id (max existing id + 1, or 1 for an empty
// catalog) and prepends the product, newest first. The created product is
// returned. The id carried on data, if any, is ignored.
func (c *Catalog) AddProduct(data domain.Product) domain.Product {
	maxID := 0
	for _, p := range c.state.Products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	data.ID = maxID + 1
	c.state.Products = append([]domain.Product{data}, c.state.Products...)
	return data
}

// UpdateProduct replaces the product with a matching id in place, preserving
// its position. Unknown ids are a no-op.
func (c *Catalog) UpdateProduct(product domain.Product) {
	for i := range c.state.Products {
		if c.state.Products[i].ID == product.ID {
			c.state.Products[i] = product
			return
		}
	}
}

// DeleteProduct removes the product and cascades removal from the favorite
// set and the cart. The three removals are applied together before the
// transition returns, so callers never observe a partial cascade.
func (c *Catalog) DeleteProduct(productID int) {
	products := make([]domain.Product, 0, len(c.state.Products))
	for _, p := range c.state.Products {
		if p.ID != productID {
			products = append(products, p)
		}
	}
	c.state.Products = products
	delete(c.state.Favorites, productID)
	c.RemoveFromCart(productID)
}

// SetEditingProduct stores a pending-edit reference for form hand-off. It
// has no effect on any derived computation.
func (c *Catalog) SetEditingProduct(product *domain.Product) {
	c.state.Editing = product
}

func (c *Catalog) resetPage() {
	c.state.CurrentPage = 1
}
