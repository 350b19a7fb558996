// Package web exposes the merchant and storefront APIs over HTTP. Handlers
// only translate between JSON and the service layer; no business rules live
// here.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mfortin/shopshelf/internal/cart"
	"github.com/mfortin/shopshelf/internal/service"
)

type Server struct {
	merchant *service.CatalogService
	shopper  *service.ShopperService
	mux      *http.ServeMux
	logger   *slog.Logger
}

func NewServer(merchant *service.CatalogService, shopper *service.ShopperService, logger *slog.Logger) *Server {
	s := &Server{
		merchant: merchant,
		shopper:  shopper,
		mux:      http.NewServeMux(),
		logger:   logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	// Merchant: inventory.
	s.mux.HandleFunc("GET /products", s.handleListProducts)
	s.mux.HandleFunc("POST /products", s.handleCreateProduct)
	s.mux.HandleFunc("GET /products/{id}", s.handleGetProduct)
	s.mux.HandleFunc("PUT /products/{id}", s.handleUpdateProduct)
	s.mux.HandleFunc("DELETE /products/{id}", s.handleDeleteProduct)
	s.mux.HandleFunc("POST /products/{id}/description", s.handleDescribeProduct)

	// Merchant: taxonomy.
	s.mux.HandleFunc("GET /categories", s.handleListCategories)
	s.mux.HandleFunc("POST /categories", s.handleCreateCategory)
	s.mux.HandleFunc("DELETE /categories/{id}", s.handleDeleteCategory)
	s.mux.HandleFunc("GET /locations", s.handleListLocations)
	s.mux.HandleFunc("POST /locations", s.handleCreateLocation)
	s.mux.HandleFunc("DELETE /locations/{id}", s.handleDeleteLocation)

	// Merchant: catalogs.
	s.mux.HandleFunc("GET /catalogs", s.handleListCatalogs)
	s.mux.HandleFunc("POST /catalogs", s.handleCreateCatalog)
	s.mux.HandleFunc("GET /catalogs/{id}", s.handleGetCatalog)
	s.mux.HandleFunc("PUT /catalogs/{id}", s.handleUpdateCatalog)
	s.mux.HandleFunc("DELETE /catalogs/{id}", s.handleDeleteCatalog)
	s.mux.HandleFunc("POST /catalogs/{id}/products/{productID}", s.handleAddCatalogProduct)
	s.mux.HandleFunc("DELETE /catalogs/{id}/products/{productID}", s.handleRemoveCatalogProduct)
	s.mux.HandleFunc("GET /catalogs/{id}/share", s.handleShareCatalog)
	s.mux.HandleFunc("POST /catalogs/{id}/tagline", s.handleCatalogTagline)
	s.mux.HandleFunc("GET /catalogs/{id}/storefront", s.handleStorefront)

	// Shopper: sessions, cart and checkout.
	s.mux.HandleFunc("POST /sessions", s.handleStartSession)
	s.mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("POST /sessions/{id}/cart/items", s.handleAddToCart)
	s.mux.HandleFunc("PATCH /sessions/{id}/cart/items/{productID}", s.handleUpdateCartItem)
	s.mux.HandleFunc("DELETE /sessions/{id}/cart/items/{productID}", s.handleRemoveCartItem)
	s.mux.HandleFunc("POST /sessions/{id}/checkout/open", s.handleOpenCart)
	s.mux.HandleFunc("POST /sessions/{id}/checkout/proceed", s.handleProceed)
	s.mux.HandleFunc("POST /sessions/{id}/checkout/finish", s.handleFinish)
	s.mux.HandleFunc("POST /sessions/{id}/checkout/reset", s.handleReset)
	s.mux.HandleFunc("GET /sessions/{id}/summary", s.handleSummary)
}

// securityHeaders sets standard hardening headers on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// respondServiceError maps service-layer errors onto HTTP status codes.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput) || errors.Is(err, cart.ErrIncompleteAddress):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrProductNotFound) ||
		errors.Is(err, service.ErrCategoryNotFound) ||
		errors.Is(err, service.ErrLocationNotFound) ||
		errors.Is(err, service.ErrCatalogNotFound) ||
		errors.Is(err, service.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.logger.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
