package web

import (
	"net/http"

	"github.com/mfortin/shopshelf/internal/cart"
	"github.com/mfortin/shopshelf/internal/domain"
	"github.com/mfortin/shopshelf/internal/service"
)

// sessionResponse is the JSON view of a shopper session. Total and item
// count are derived server-side so clients never do money arithmetic.
type sessionResponse struct {
	ID        string                  `json:"id"`
	CatalogID string                  `json:"catalogId"`
	Step      cart.Step               `json:"step"`
	Items     []domain.CartEntry      `json:"items"`
	ItemCount int                     `json:"itemCount"`
	Total     string                  `json:"total"`
	Address   *domain.ShippingAddress `json:"shippingAddress,omitempty"`
}

func newSessionResponse(sess service.Session) sessionResponse {
	resp := sessionResponse{
		ID:        sess.ID,
		CatalogID: sess.CatalogID,
		Step:      sess.Checkout.Step,
		Items:     sess.Checkout.Cart,
		ItemCount: cart.ItemCount(sess.Checkout.Cart),
		Total:     cart.Total(sess.Checkout.Cart).StringFixed(2),
	}
	if resp.Items == nil {
		resp.Items = []domain.CartEntry{}
	}
	if sess.Checkout.Address.Street != "" {
		addr := sess.Checkout.Address
		resp.Address = &addr
	}
	return resp
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CatalogID string `json:"catalogId"`
	}
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.shopper.StartSession(in.CatalogID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, newSessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.shopper.Session(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	sess, err := s.shopper.AddToCart(r.PathValue("id"), in.ProductID, in.Quantity)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Delta int `json:"delta"`
	}
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.shopper.UpdateQuantity(r.PathValue("id"), r.PathValue("productID"), in.Delta)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess, err := s.shopper.RemoveFromCart(r.PathValue("id"), r.PathValue("productID"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleOpenCart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.shopper.OpenCart(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleProceed(w http.ResponseWriter, r *http.Request) {
	sess, err := s.shopper.ProceedToShipping(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

// handleFinish confirms the order, either with a complete shipping address
// or by explicitly skipping the address step.
func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Skip   bool   `json:"skip"`
		Street string `json:"street"`
		City   string `json:"city"`
		Zip    string `json:"zip"`
	}
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var sess service.Session
	var err error
	if in.Skip {
		sess, err = s.shopper.SkipShipping(r.PathValue("id"))
	} else {
		sess, err = s.shopper.FinishOrder(r.PathValue("id"), domain.ShippingAddress{
			Street: in.Street,
			City:   in.City,
			Zip:    in.Zip,
		})
	}
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.shopper.ResetOrder(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

// handleSummary returns the copy-ready order summary as plain text, the same
// string the client puts on the clipboard.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	text, err := s.shopper.Summary(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(text)); err != nil {
		s.logger.Error("failed to write summary", "error", err)
	}
}
