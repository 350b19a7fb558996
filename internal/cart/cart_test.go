package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfortin/shopshelf/internal/domain"
)

func product(id, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func TestAdd(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "12.99"), 2)

	require.Len(t, c, 1)
	assert.Equal(t, "p-1", c[0].ProductID)
	assert.Equal(t, 2, c[0].Quantity)
	assert.Equal(t, "Pen", c[0].Product.Name)
}

func TestAdd_MergesByProductIdentity(t *testing.T) {
	pen := product("p-1", "Pen", "12.99")

	c := Add(nil, pen, 2)
	c = Add(c, pen, 3)

	require.Len(t, c, 1, "second add must not create a duplicate entry")
	assert.Equal(t, 5, c[0].Quantity)
}

func TestAdd_AppendsInFirstAddedOrder(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "1.00"), 1)
	c = Add(c, product("p-2", "Pad", "2.00"), 1)
	c = Add(c, product("p-1", "Pen", "1.00"), 1)

	require.Len(t, c, 2)
	assert.Equal(t, "p-1", c[0].ProductID)
	assert.Equal(t, "p-2", c[1].ProductID)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	pen := product("p-1", "Pen", "12.99")
	original := Add(nil, pen, 1)

	_ = Add(original, pen, 4)

	assert.Equal(t, 1, original[0].Quantity)
}

func TestUpdateQuantity_FloorsAtOne(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "12.99"), 1)

	c = UpdateQuantity(c, "p-1", -100)

	assert.Equal(t, 1, c[0].Quantity)
}

func TestUpdateQuantity_AppliesDelta(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "12.99"), 2)

	c = UpdateQuantity(c, "p-1", 3)
	assert.Equal(t, 5, c[0].Quantity)

	c = UpdateQuantity(c, "p-1", -4)
	assert.Equal(t, 1, c[0].Quantity)
}

func TestUpdateQuantity_AbsentIDIsNoOp(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "12.99"), 2)

	updated := UpdateQuantity(c, "p-9", 5)

	assert.Equal(t, c, updated)
}

func TestRemove(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "1.00"), 1)
	c = Add(c, product("p-2", "Pad", "2.00"), 1)

	c = Remove(c, "p-1")

	require.Len(t, c, 1)
	assert.Equal(t, "p-2", c[0].ProductID)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "1.00"), 1)

	updated := Remove(c, "p-9")

	assert.Equal(t, c, updated)
}

func TestTotal(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "12.99"), 2)
	c = Add(c, product("p-2", "Pad", "18.50"), 1)

	assert.Equal(t, "44.48", Total(c).StringFixed(2))
}

func TestTotal_UsesSnapshotPrice(t *testing.T) {
	pen := product("p-1", "Pen", "12.99")
	c := Add(nil, pen, 2)

	// A later price edit to the live product must not change the cart total.
	pen.Price = decimal.RequireFromString("99.99")

	assert.Equal(t, "25.98", Total(c).StringFixed(2))
}

func TestTotal_EmptyCart(t *testing.T) {
	assert.Equal(t, "0.00", Total(nil).StringFixed(2))
}

func TestItemCount(t *testing.T) {
	c := Add(nil, product("p-1", "Pen", "1.00"), 2)
	c = Add(c, product("p-2", "Pad", "2.00"), 3)

	assert.Equal(t, 5, ItemCount(c))
	assert.Len(t, c, 2)
}
