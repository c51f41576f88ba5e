package domain

// CartLine pairs a product with a positive quantity. The catalog keeps at
// most one line per product id; a quantity driven to zero removes the line.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// PriceRange is an inclusive [Low, High] price filter bound.
type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether price falls inside the inclusive range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Low && price <= r.High
}

// FilterSet holds every active product filter. The zero-restriction values
// are: category "all", empty brand set, rating 0, InStock false.
type FilterSet struct {
	Category   string     `json:"category"`
	PriceRange PriceRange `json:"priceRange"`
	Brands     []string   `json:"brands"`
	Rating     float64    `json:"rating"`
	InStock    bool       `json:"inStock"`
}

// CategoryAll is the category filter value that accepts every category.
const CategoryAll = "all"

// DefaultItemsPerPage is the page size a fresh session starts with.
const DefaultItemsPerPage = 8

// CatalogState is the aggregate root for one session: the product list plus
// all user-driven selection state. One instance exists per session and is
// owned by exactly one catalog store.
type CatalogState struct {
	Products     []Product        `json:"products"`
	Favorites    map[int]struct{} `json:"-"`
	Cart         []CartLine       `json:"cart"`
	Filters      FilterSet        `json:"filters"`
	SearchTerm   string           `json:"searchTerm"`
	CurrentPage  int              `json:"currentPage"`
	ItemsPerPage int              `json:"itemsPerPage"`
	Editing      *Product         `json:"editingProduct,omitempty"`
}

// NewCatalogState builds the initial state for a session over the given
// product list. Filters start fully open, the cursor on page 1.
func NewCatalogState(products []Product) CatalogState {
	return CatalogState{
		Products:     products,
		Favorites:    make(map[int]struct{}),
		Filters:      DefaultFilters(products),
		CurrentPage:  1,
		ItemsPerPage: DefaultItemsPerPage,
	}
}

// DefaultFilters returns the no-restriction filter set for the given product
// list: category "all" and the full observed price range.
func DefaultFilters(products []Product) FilterSet {
	return FilterSet{
		Category:   CategoryAll,
		PriceRange: PriceRange{Low: 0, High: MaxPrice(products)},
	}
}

// MaxPrice returns the highest price across products, 0 for an empty list.
func MaxPrice(products []Product) float64 {
	max := 0.0
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// IsFavorite reports membership of id in the favorite set.
func (s CatalogState) IsFavorite(id int) bool {
	_, ok := s.Favorites[id]
	return ok
}

// FindProduct returns the product with the given id, or false if the catalog
// has no such product.
func (s CatalogState) FindProduct(id int) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
