package domain

import "testing"

func TestNewCatalogStateDefaults(t *testing.T) {
	products := SeedProducts()
	s := NewCatalogState(products)

	if s.CurrentPage != 1 {
		t.Fatalf("expected page 1, got %d", s.CurrentPage)
	}
	if s.ItemsPerPage != DefaultItemsPerPage {
		t.Fatalf("expected page size %d, got %d", DefaultItemsPerPage, s.ItemsPerPage)
	}
	if s.Filters.Category != CategoryAll {
		t.Fatalf("expected category %q, got %q", CategoryAll, s.Filters.Category)
	}
	if s.Filters.PriceRange.Low != 0 || s.Filters.PriceRange.High != 1299 {
		t.Fatalf("expected price range [0, 1299], got %+v", s.Filters.PriceRange)
	}
	if len(s.Filters.Brands) != 0 || s.Filters.Rating != 0 || s.Filters.InStock {
		t.Fatalf("expected open filters, got %+v", s.Filters)
	}
	if s.SearchTerm != "" || len(s.Favorites) != 0 || len(s.Cart) != 0 || s.Editing != nil {
		t.Fatalf("expected empty selection state")
	}
}

func TestMaxPriceEmptyCatalog(t *testing.T) {
	if got := MaxPrice(nil); got != 0 {
		t.Fatalf("expected 0 for empty catalog, got %v", got)
	}
}

func TestPriceRangeContains(t *testing.T) {
	r := PriceRange{Low: 100, High: 500}

	tests := []struct {
		price float64
		want  bool
	}{
		{99.99, false},
		{100, true},
		{300, true},
		{500, true},
		{500.01, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.price); got != tt.want {
			t.Fatalf("Contains(%v) = %v, want %v", tt.price, got, tt.want)
		}
	}
}

func TestFindProduct(t *testing.T) {
	s := NewCatalogState(SeedProducts())

	p, ok := s.FindProduct(4)
	if !ok || p.Title != "Sony WH-1000XM5" {
		t.Fatalf("expected to find product 4, got %+v ok=%v", p, ok)
	}

	if _, ok := s.FindProduct(99); ok {
		t.Fatalf("expected no product with id 99")
	}
}

func TestSeedProductsIsolatedPerCall(t *testing.T) {
	a := SeedProducts()
	b := SeedProducts()

	a[0].Title = "mutated"
	if b[0].Title == "mutated" {
		t.Fatalf("seed calls share backing storage")
	}
	if len(a) != 12 || len(b) != 12 {
		t.Fatalf("expected 12 seed products")
	}
}
