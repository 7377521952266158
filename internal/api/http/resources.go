package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
)

type resourcesResponse struct {
	Resources []course.Resource `json:"resources"`
}

// POST /sessions/{id}/resources (dev mode)
func AddResourceHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		rs, err := s.AddResource()
		if err != nil {
			fail(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, resourcesResponse{Resources: rs})
	})
}

// PATCH /sessions/{id}/resources/{index} {field, value} (dev mode)
func UpdateResourceHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "index must be a number", http.StatusBadRequest)
			return
		}
		var req struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		rs, err := s.UpdateResource(idx, req.Field, req.Value)
		if err != nil {
			fail(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resourcesResponse{Resources: rs})
	})
}

// DELETE /sessions/{id}/resources/{index} (dev mode)
func DeleteResourceHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "index must be a number", http.StatusBadRequest)
			return
		}
		rs, err := s.RemoveResource(idx)
		if err != nil {
			fail(w, err)
			return
		}
		respondJSON(w, http.StatusOK, resourcesResponse{Resources: rs})
	})
}
