// Package cart holds the quantity-aggregated product selections of a single
// shopping session, and the checkout flow that governs when they can change.
// Cart operations are pure: they return a new Cart and never mutate input.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/mfortin/shopshelf/internal/domain"
)

// Cart is an ordered sequence of entries, first-added order. There is at
// most one entry per product id.
type Cart []domain.CartEntry

// Add merges quantity into the existing entry for p, or appends a new entry
// carrying a snapshot of p. Quantities below 1 are treated as 1.
func Add(c Cart, p domain.Product, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}

	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ProductID == p.ID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, domain.CartEntry{ProductID: p.ID, Quantity: quantity, Product: p})
}

// UpdateQuantity applies delta to the matching entry's quantity, flooring at
// 1. Removal goes through Remove, never through a negative delta. An absent
// product id is a no-op.
func UpdateQuantity(c Cart, productID string, delta int) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].ProductID == productID {
			q := out[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			out[i].Quantity = q
			break
		}
	}
	return out
}

// Remove drops the entry for productID. An absent id is a no-op.
func Remove(c Cart, productID string) Cart {
	out := make(Cart, 0, len(c))
	for _, e := range c {
		if e.ProductID != productID {
			out = append(out, e)
		}
	}
	return out
}

// Total sums price x quantity over all entries using the snapshot price
// captured when each entry was added.
func Total(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, e := range c {
		total = total.Add(e.Product.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

// ItemCount sums entry quantities. It differs from len(c), which counts
// distinct products.
func ItemCount(c Cart) int {
	count := 0
	for _, e := range c {
		count += e.Quantity
	}
	return count
}
