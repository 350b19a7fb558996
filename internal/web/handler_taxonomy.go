package web

import "net/http"

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.merchant.Categories())
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in createCategoryRequest
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.merchant.CreateCategory(r.Context(), in.Name, in.Description, in.ParentID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.merchant.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.merchant.Locations())
}

func (s *Server) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var in createLocationRequest
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := s.merchant.CreateLocation(r.Context(), in.Name, in.Description)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, l)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.merchant.DeleteLocation(r.Context(), r.PathValue("id")); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
