package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfortin/shopshelf/internal/cart"
	"github.com/mfortin/shopshelf/internal/domain"
)

func newTestShopperService(t *testing.T) *ShopperService {
	t.Helper()
	merchant, _ := newTestCatalogService(t, nil)
	return NewShopperService(merchant, testLogger())
}

func TestStartSession(t *testing.T) {
	shopper := newTestShopperService(t)

	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "cl-1", sess.CatalogID)
	assert.Equal(t, cart.StepBrowsing, sess.Checkout.Step)
}

func TestStartSession_UnknownCatalog(t *testing.T) {
	shopper := newTestShopperService(t)

	_, err := shopper.StartSession("cl-missing")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestAddToCart_MergesByIdentity(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)

	sess, err = shopper.AddToCart(sess.ID, "p-1", 2)
	require.NoError(t, err)
	sess, err = shopper.AddToCart(sess.ID, "p-1", 3)
	require.NoError(t, err)

	require.Len(t, sess.Checkout.Cart, 1)
	assert.Equal(t, 5, sess.Checkout.Cart[0].Quantity)
}

func TestAddToCart_ProductNotInCatalog(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)

	// p-2 exists in inventory but is not a member of cl-1.
	_, err = shopper.AddToCart(sess.ID, "p-2", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddToCart_SnapshotSurvivesPriceEdit(t *testing.T) {
	merchant, _ := newTestCatalogService(t, nil)
	shopper := NewShopperService(merchant, testLogger())
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)

	sess, err = shopper.AddToCart(sess.ID, "p-1", 2)
	require.NoError(t, err)

	// Re-price the live product; the cart keeps the add-time snapshot.
	_, err = merchant.UpdateProduct(context.Background(), "p-1", ProductInput{
		Name:       "Gel Pen",
		CategoryID: "cat-1",
		Price:      decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)

	sess, err = shopper.Session(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.98", cart.Total(sess.Checkout.Cart).StringFixed(2))
}

func TestUpdateQuantity_Floor(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)
	sess, err = shopper.AddToCart(sess.ID, "p-1", 1)
	require.NoError(t, err)

	sess, err = shopper.UpdateQuantity(sess.ID, "p-1", -100)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Checkout.Cart[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)
	sess, err = shopper.AddToCart(sess.ID, "p-1", 1)
	require.NoError(t, err)

	sess, err = shopper.RemoveFromCart(sess.ID, "p-1")
	require.NoError(t, err)
	assert.Empty(t, sess.Checkout.Cart)
}

func TestCheckoutFlowThroughService(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)
	_, err = shopper.AddToCart(sess.ID, "p-1", 2)
	require.NoError(t, err)

	sess, err = shopper.OpenCart(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.StepCartReview, sess.Checkout.Step)

	sess, err = shopper.ProceedToShipping(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.StepShippingDetails, sess.Checkout.Step)

	_, err = shopper.FinishOrder(sess.ID, domain.ShippingAddress{Street: "1 Main St"})
	assert.ErrorIs(t, err, cart.ErrIncompleteAddress)

	sess, err = shopper.FinishOrder(sess.ID, domain.ShippingAddress{Street: "1 Main St", City: "Springfield", Zip: "00000"})
	require.NoError(t, err)
	assert.Equal(t, cart.StepConfirmation, sess.Checkout.Step)
}

func TestSummary(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)
	_, err = shopper.AddToCart(sess.ID, "p-1", 2)
	require.NoError(t, err)

	text, err := shopper.Summary(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Order Summary from Summer Picks:\nGel Pen x2 - $25.98\nTotal: $25.98", text)
}

func TestResetOrder_ClearsCart(t *testing.T) {
	shopper := newTestShopperService(t)
	sess, err := shopper.StartSession("cl-1")
	require.NoError(t, err)
	_, err = shopper.AddToCart(sess.ID, "p-1", 2)
	require.NoError(t, err)
	_, err = shopper.OpenCart(sess.ID)
	require.NoError(t, err)

	sess, err = shopper.ResetOrder(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.StepBrowsing, sess.Checkout.Step)
	assert.Empty(t, sess.Checkout.Cart)
}

func TestSessionNotFound(t *testing.T) {
	shopper := newTestShopperService(t)

	_, err := shopper.Session("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = shopper.AddToCart("missing", "p-1", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
