package web

import (
	"net/http"
	"strings"

	"github.com/mfortin/shopshelf/internal/storefront"
)

type catalogRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.merchant.Catalogs())
}

func (s *Server) handleCreateCatalog(w http.ResponseWriter, r *http.Request) {
	var in catalogRequest
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.merchant.CreateCatalog(r.Context(), in.Name, in.Description)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := s.merchant.Catalog(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateCatalog(w http.ResponseWriter, r *http.Request) {
	var in catalogRequest
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.merchant.UpdateCatalog(r.Context(), r.PathValue("id"), in.Name, in.Description)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCatalog(w http.ResponseWriter, r *http.Request) {
	if err := s.merchant.DeleteCatalog(r.Context(), r.PathValue("id")); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddCatalogProduct(w http.ResponseWriter, r *http.Request) {
	c, err := s.merchant.AddCatalogProduct(r.Context(), r.PathValue("id"), r.PathValue("productID"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleRemoveCatalogProduct(w http.ResponseWriter, r *http.Request) {
	c, err := s.merchant.RemoveCatalogProduct(r.Context(), r.PathValue("id"), r.PathValue("productID"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleShareCatalog(w http.ResponseWriter, r *http.Request) {
	link, err := s.merchant.ShareLink(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"shareLink": link})
}

func (s *Server) handleCatalogTagline(w http.ResponseWriter, r *http.Request) {
	text, err := s.merchant.TaglineForCatalog(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"tagline": text})
}

// handleStorefront is the customer-facing view of a catalog: its visible
// products under the optional query filters, plus the grouped-by-category
// breakdown.
func (s *Server) handleStorefront(w http.ResponseWriter, r *http.Request) {
	f := storefront.Filter{
		CategoryID: r.URL.Query().Get("category"),
		LocationID: r.URL.Query().Get("location"),
		Search:     strings.TrimSpace(r.URL.Query().Get("q")),
	}

	visible, groups, err := s.merchant.Storefront(r.PathValue("id"), f)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"products": visible,
		"groups":   groups,
	})
}
