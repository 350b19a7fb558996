package service

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mfortin/shopshelf/internal/cart"
	"github.com/mfortin/shopshelf/internal/catalog"
	"github.com/mfortin/shopshelf/internal/domain"
	"github.com/mfortin/shopshelf/internal/summary"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the snapshot of one shopper's transient view state handed to
// the transport layer.
type Session struct {
	ID        string
	CatalogID string
	Checkout  cart.Checkout
}

// ShopperService holds the customer-facing sessions: each one is a cart plus
// checkout flow layered over a read-only view of one catalog. Sessions live
// only in memory and are never persisted.
type ShopperService struct {
	mu       sync.Mutex
	sessions map[string]*Session
	merchant *CatalogService
	logger   *slog.Logger
}

func NewShopperService(merchant *CatalogService, logger *slog.Logger) *ShopperService {
	return &ShopperService{
		sessions: make(map[string]*Session),
		merchant: merchant,
		logger:   logger,
	}
}

// StartSession opens a browsing session against an existing catalog.
func (s *ShopperService) StartSession(catalogID string) (Session, error) {
	if _, err := s.merchant.Catalog(catalogID); err != nil {
		return Session{}, err
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CatalogID: catalogID,
		Checkout:  cart.NewCheckout(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("shopper session started", "session_id", sess.ID, "catalog_id", catalogID)
	return *sess, nil
}

func (s *ShopperService) Session(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return *sess, nil
	}
	return Session{}, ErrSessionNotFound
}

// mutate applies fn to the session's checkout state under the lock.
func (s *ShopperService) mutate(id string, fn func(cart.Checkout) (cart.Checkout, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	next, err := fn(sess.Checkout)
	if err != nil {
		return Session{}, err
	}
	sess.Checkout = next
	return *sess, nil
}

// AddToCart snapshots the product as it exists right now and merges it into
// the session cart. The product must currently be a member of the session's
// catalog.
func (s *ShopperService) AddToCart(sessionID, productID string, quantity int) (Session, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return Session{}, err
	}
	c, err := s.merchant.Catalog(sess.CatalogID)
	if err != nil {
		return Session{}, err
	}
	if !catalog.Contains(c, productID) {
		return Session{}, ErrProductNotFound
	}
	p, err := s.merchant.Product(productID)
	if err != nil {
		return Session{}, err
	}

	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		co.Cart = cart.Add(co.Cart, p, quantity)
		return co, nil
	})
}

// UpdateQuantity applies a delta to a cart line, flooring at 1.
func (s *ShopperService) UpdateQuantity(sessionID, productID string, delta int) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		co.Cart = cart.UpdateQuantity(co.Cart, productID, delta)
		return co, nil
	})
}

func (s *ShopperService) RemoveFromCart(sessionID, productID string) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		co.Cart = cart.Remove(co.Cart, productID)
		return co, nil
	})
}

// OpenCart moves the session from browsing to cart review.
func (s *ShopperService) OpenCart(sessionID string) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		return co.OpenCart(), nil
	})
}

// ProceedToShipping moves the session from cart review to shipping details.
func (s *ShopperService) ProceedToShipping(sessionID string) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		return co.Proceed(), nil
	})
}

// FinishOrder records a complete shipping address and confirms the order.
func (s *ShopperService) FinishOrder(sessionID string, addr domain.ShippingAddress) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		return co.Finish(addr)
	})
}

// SkipShipping confirms the order without a shipping address.
func (s *ShopperService) SkipShipping(sessionID string) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		return co.Skip(), nil
	})
}

// ResetOrder clears the cart and returns the session to browsing.
func (s *ShopperService) ResetOrder(sessionID string) (Session, error) {
	return s.mutate(sessionID, func(co cart.Checkout) (cart.Checkout, error) {
		return co.Reset(), nil
	})
}

// Summary renders the copy-ready order summary for the session's cart.
func (s *ShopperService) Summary(sessionID string) (string, error) {
	sess, err := s.Session(sessionID)
	if err != nil {
		return "", err
	}
	c, err := s.merchant.Catalog(sess.CatalogID)
	if err != nil {
		return "", err
	}
	return summary.Format(c.Name, sess.Checkout.Cart, sess.Checkout.Address), nil
}
