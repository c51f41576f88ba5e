package store

import (
	"encoding/json"
	"os"

	"product_catalog/domain"
)

// LoadSeedFile reads a JSON array of products to seed a session catalog.
// Every product must carry a positive, unique id and pass field validation;
// a bad file is rejected as a whole rather than partially loaded.
func LoadSeedFile(path string) ([]domain.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, domain.NewInvalidSeedError(path, err.Error())
	}

	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return nil, domain.NewInvalidSeedError(path, "product id must be positive")
		}
		if _, dup := seen[p.ID]; dup {
			return nil, domain.NewInvalidSeedError(path, "duplicate product id")
		}
		seen[p.ID] = struct{}{}
		if err := domain.ValidateProduct(p); err != nil {
			return nil, domain.NewInvalidSeedError(path, err.Error())
		}
	}
	return products, nil
}
