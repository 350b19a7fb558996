// Package summary renders a finalized cart selection as a deterministic,
// copy-ready text block. There is no payment backend; this text is the
// terminal state of the checkout flow, handed off out-of-band.
package summary

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfortin/shopshelf/internal/cart"
	"github.com/mfortin/shopshelf/internal/domain"
)

// Format produces the order summary text for a cart assembled from the named
// catalog. The shipping line is appended only when the address has a street.
// Currency is always rendered with exactly two decimal digits.
func Format(catalogName string, c cart.Cart, addr domain.ShippingAddress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Summary from %s:\n", catalogName)
	for _, e := range c {
		lineTotal := e.Product.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		fmt.Fprintf(&b, "%s x%d - $%s\n", e.Product.Name, e.Quantity, lineTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s", cart.Total(c).StringFixed(2))
	if addr.Street != "" {
		fmt.Fprintf(&b, "\nShipping to: %s, %s %s", addr.Street, addr.City, addr.Zip)
	}
	return b.String()
}
