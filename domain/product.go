// Package domain defines core business types for the catalog.
package domain

import "github.com/shopspring/decimal"

// Product represents one catalog entry. A product is created by seeding or by
// the add transition and is only ever replaced wholesale by the update
// transition, never mutated field by field.
type Product struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	Brand              string  `json:"brand"`
	Thumbnail          string  `json:"thumbnail"`
	Rating             float64 `json:"rating"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Category           string  `json:"category"`
	Stock              int     `json:"stock"`
}

// ValidateProduct checks field constraints for a product about to enter the
// catalog. The ID field is not checked: ids are assigned by the catalog on
// add and matched on update.
func ValidateProduct(p Product) error {
	if p.Title == "" {
		return NewInvalidProductError("title", "cannot be empty", p.Title)
	}
	if p.Price < 0 {
		return NewInvalidProductError("price", "must be non-negative", p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewInvalidProductError("rating", "must be between 0 and 5", p.Rating)
	}
	if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
		return NewInvalidProductError("discountPercentage", "must be between 0 and 100", p.DiscountPercentage)
	}
	if p.Stock < 0 {
		return NewInvalidProductError("stock", "must be non-negative", p.Stock)
	}
	return nil
}

// DiscountedPrice returns the price after applying DiscountPercentage,
// rounded to two decimal places.
func (p Product) DiscountedPrice() decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	factor := decimal.NewFromFloat(100 - p.DiscountPercentage)
	return price.Mul(factor).Div(decimal.NewFromInt(100)).Round(2)
}
