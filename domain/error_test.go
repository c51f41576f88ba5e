package domain

import (
	"errors"
	"testing"
)

func TestProductNotFoundError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewProductNotFoundError(123)
		expected := "product not found: id=123"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewProductNotFoundError(123)
		target := &ProductNotFoundError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect ProductNotFoundError")
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewProductNotFoundError(456)
		var pnf *ProductNotFoundError
		if !errors.As(err, &pnf) {
			t.Fatal("errors.As should convert to ProductNotFoundError")
		}
		if pnf.ProductID != 456 {
			t.Errorf("expected ProductID 456, got %d", pnf.ProductID)
		}
	})

	t.Run("IsProductNotFoundError helper", func(t *testing.T) {
		err := NewProductNotFoundError(789)
		if !IsProductNotFoundError(err) {
			t.Error("IsProductNotFoundError should return true")
		}
	})
}

func TestInvalidProductError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidProductError("price", "must be non-negative", -10.5)
		expected := "invalid product: field=price, reason=must be non-negative, value=-10.5"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidProductError("title", "cannot be empty", "")
		target := &InvalidProductError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidProductError")
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInvalidProductError("stock", "must be non-negative", -5)
		var ipe *InvalidProductError
		if !errors.As(err, &ipe) {
			t.Fatal("errors.As should convert to InvalidProductError")
		}
		if ipe.Field != "stock" || ipe.Reason != "must be non-negative" {
			t.Errorf("error fields not correctly preserved")
		}
	})

	t.Run("IsInvalidProductError helper", func(t *testing.T) {
		err := NewInvalidProductError("category", "invalid category", "Unknown")
		if !IsInvalidProductError(err) {
			t.Error("IsInvalidProductError should return true")
		}
	})
}

func TestInvalidSeedError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidSeedError("seed.json", "duplicate product id")
		expected := "invalid seed file: path=seed.json, reason=duplicate product id"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidSeedError("seed.json", "bad json")
		target := &InvalidSeedError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidSeedError")
		}
	})

	t.Run("IsInvalidSeedError helper", func(t *testing.T) {
		err := NewInvalidSeedError("seed.json", "bad json")
		if !IsInvalidSeedError(err) {
			t.Error("IsInvalidSeedError should return true")
		}
	})

	t.Run("not confused with other types", func(t *testing.T) {
		err := NewInvalidProductError("price", "must be non-negative", -1)
		if IsInvalidSeedError(err) {
			t.Error("IsInvalidSeedError should not match InvalidProductError")
		}
	})
}
