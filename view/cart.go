package view

import (
	"github.com/shopspring/decimal"

	"product_catalog/domain"
)

// CartLineView is one cart row with its extended total (price x quantity).
type CartLineView struct {
	Product  domain.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// CartSummary aggregates cart contents with exact money totals.
type CartSummary struct {
	Lines    []CartLineView  `json:"lines"`
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// SummarizeCart projects the cart with per-line and overall totals. Money
// math is done in decimal so repeated additions of prices like 329.95 do
// not accumulate float drift.
func SummarizeCart(state domain.CatalogState) CartSummary {
	summary := CartSummary{Subtotal: decimal.Zero}
	for _, line := range state.Cart {
		total := decimal.NewFromFloat(line.Product.Price).
			Mul(decimal.NewFromInt(int64(line.Quantity)))
		summary.Lines = append(summary.Lines, CartLineView{
			Product:  line.Product,
			Quantity: line.Quantity,
			Total:    total,
		})
		summary.Items += line.Quantity
		summary.Subtotal = summary.Subtotal.Add(total)
	}
	return summary
}
