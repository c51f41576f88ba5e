package store

import (
	"product_catalog/domain"
)

// SeedBuiltin selects the built-in demo catalog as the seed source.
const SeedBuiltin = "builtin"

// NewCatalogFromSource constructs a session Catalog from a seed source:
// "builtin" (or empty) for the built-in demo catalog, anything else is
// treated as a path to a JSON seed file.
func NewCatalogFromSource(source string) (*Catalog, error) {
	if source == "" || source == SeedBuiltin {
		return NewCatalog(domain.SeedProducts()), nil
	}
	products, err := LoadSeedFile(source)
	if err != nil {
		return nil, err
	}
	return NewCatalog(products), nil
}
