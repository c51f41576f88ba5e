package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name        string
		product     Product
		expectError bool
		errField    string
	}{
		{
			name: "valid product",
			product: Product{
				ID:       1,
				Title:    "Laptop",
				Price:    1000,
				Rating:   4.5,
				Category: "Laptops",
				Stock:    5,
			},
			expectError: false,
		},
		{
			name: "empty title",
			product: Product{
				ID:    2,
				Title: "",
				Price: 10,
			},
			expectError: true,
			errField:    "title",
		},
		{
			name: "negative price",
			product: Product{
				ID:    3,
				Title: "Book",
				Price: -1,
			},
			expectError: true,
			errField:    "price",
		},
		{
			name: "rating above five",
			product: Product{
				ID:     4,
				Title:  "Pen",
				Price:  1,
				Rating: 5.1,
			},
			expectError: true,
			errField:    "rating",
		},
		{
			name: "discount above hundred",
			product: Product{
				ID:                 5,
				Title:              "Pen",
				Price:              1,
				DiscountPercentage: 101,
			},
			expectError: true,
			errField:    "discountPercentage",
		},
		{
			name: "negative stock",
			product: Product{
				ID:    6,
				Title: "Pen",
				Price: 1,
				Stock: -5,
			},
			expectError: true,
			errField:    "stock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}

				ipe, ok := err.(*InvalidProductError)
				if !ok {
					t.Fatalf("expected InvalidProductError, got %T", err)
				}

				if ipe.Field != tt.errField {
					t.Fatalf(
						"expected error field %q, got %q",
						tt.errField,
						ipe.Field,
					)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     string
	}{
		{"ten percent off 999", 999, 10, "899.1"},
		{"five percent off 849", 849, 5, "806.55"},
		{"no discount", 100, 0, "100"},
		{"full discount", 100, 100, "0"},
		{"rounded to cents", 329, 6, "309.26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, DiscountPercentage: tt.discount}
			want := decimal.RequireFromString(tt.want)
			if got := p.DiscountedPrice(); !got.Equal(want) {
				t.Fatalf("expected %s, got %s", want, got)
			}
		})
	}
}
