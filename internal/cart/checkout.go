package cart

import (
	"errors"

	"github.com/mfortin/shopshelf/internal/domain"
)

// Step is the customer's position in the checkout flow.
type Step string

const (
	StepBrowsing        Step = "browsing"
	StepCartReview      Step = "cart_review"
	StepShippingDetails Step = "shipping_details"
	StepConfirmation    Step = "confirmation"
)

// ErrIncompleteAddress is returned by Finish when any of street, city or zip
// is empty. Customers who do not want to supply an address use Skip.
var ErrIncompleteAddress = errors.New("shipping address requires street, city and zip")

// Checkout is the transient per-session view state: the cart, the shipping
// address and the flow step. It is never persisted. Transition methods are
// pure; calling one from the wrong step is a no-op.
type Checkout struct {
	Step    Step
	Cart    Cart
	Address domain.ShippingAddress
}

// NewCheckout starts a session in the browsing step with an empty cart.
func NewCheckout() Checkout {
	return Checkout{Step: StepBrowsing}
}

// OpenCart moves from browsing to cart review.
func (c Checkout) OpenCart() Checkout {
	if c.Step == StepBrowsing {
		c.Step = StepCartReview
	}
	return c
}

// Proceed moves from cart review to shipping details.
func (c Checkout) Proceed() Checkout {
	if c.Step == StepCartReview {
		c.Step = StepShippingDetails
	}
	return c
}

// Finish records a complete shipping address and moves to confirmation.
func (c Checkout) Finish(addr domain.ShippingAddress) (Checkout, error) {
	if c.Step != StepShippingDetails {
		return c, nil
	}
	if !addr.Complete() {
		return c, ErrIncompleteAddress
	}
	c.Address = addr
	c.Step = StepConfirmation
	return c, nil
}

// Skip moves to confirmation without a shipping address.
func (c Checkout) Skip() Checkout {
	if c.Step == StepShippingDetails {
		c.Address = domain.ShippingAddress{}
		c.Step = StepConfirmation
	}
	return c
}

// Reset clears the cart and address and returns to browsing. It is the only
// way out of the confirmation step.
func (c Checkout) Reset() Checkout {
	return NewCheckout()
}
