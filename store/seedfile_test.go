package store

import (
	"os"
	"path/filepath"
	"testing"

	"product_catalog/domain"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestLoadSeedFile_Valid(t *testing.T) {
	path := writeSeed(t, `[
  {"id": 1, "title": "Widget", "price": 9.99, "brand": "Acme", "rating": 4.2, "category": "Tools", "stock": 3},
  {"id": 2, "title": "Gadget", "price": 19.99, "brand": "Acme", "rating": 3.9, "category": "Tools", "stock": 0}
]`)

	products, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Title != "Widget" || products[1].Stock != 0 {
		t.Fatalf("unexpected decoded products: %+v", products)
	}
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"not an array", `{"id": 1}`},
		{"non-positive id", `[{"id": 0, "title": "X", "price": 1}]`},
		{"duplicate id", `[{"id": 1, "title": "X", "price": 1}, {"id": 1, "title": "Y", "price": 2}]`},
		{"negative price", `[{"id": 1, "title": "X", "price": -1}]`},
		{"empty title", `[{"id": 1, "title": "", "price": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeed(t, tt.content)
			_, err := LoadSeedFile(path)
			if !domain.IsInvalidSeedError(err) {
				t.Fatalf("expected InvalidSeedError, got %v", err)
			}
		})
	}
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "no-such.json"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if domain.IsInvalidSeedError(err) {
		t.Fatalf("missing file should surface the filesystem error, got %v", err)
	}
}
