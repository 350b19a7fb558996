package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mfortin/shopshelf/internal/cart"
	"github.com/mfortin/shopshelf/internal/domain"
)

func buildCart(t *testing.T) cart.Cart {
	t.Helper()
	c := cart.Add(nil, domain.Product{ID: "p-1", Name: "Pen", Price: decimal.RequireFromString("12.99")}, 2)
	return cart.Add(c, domain.Product{ID: "p-2", Name: "Pad", Price: decimal.RequireFromString("18.50")}, 1)
}

func TestFormat(t *testing.T) {
	got := Format("Summer Picks", buildCart(t), domain.ShippingAddress{})

	want := "Order Summary from Summer Picks:\n" +
		"Pen x2 - $25.98\n" +
		"Pad x1 - $18.50\n" +
		"Total: $44.48"
	assert.Equal(t, want, got)
}

func TestFormat_WithShippingAddress(t *testing.T) {
	addr := domain.ShippingAddress{Street: "1 Main St", City: "Springfield", Zip: "00000"}

	got := Format("Summer Picks", buildCart(t), addr)

	want := "Order Summary from Summer Picks:\n" +
		"Pen x2 - $25.98\n" +
		"Pad x1 - $18.50\n" +
		"Total: $44.48\n" +
		"Shipping to: 1 Main St, Springfield 00000"
	assert.Equal(t, want, got)
}

func TestFormat_EmptyCart(t *testing.T) {
	got := Format("Summer Picks", nil, domain.ShippingAddress{})

	assert.Equal(t, "Order Summary from Summer Picks:\nTotal: $0.00", got)
}

func TestFormat_RoundsHalfUp(t *testing.T) {
	c := cart.Add(nil, domain.Product{ID: "p-1", Name: "Clip", Price: decimal.RequireFromString("0.125")}, 1)

	got := Format("Odds", c, domain.ShippingAddress{})

	assert.Contains(t, got, "Clip x1 - $0.13")
	assert.Contains(t, got, "Total: $0.13")
}
