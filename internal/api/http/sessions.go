package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
)

const maxCourseBody = 1 << 20

// POST /sessions  body: course JSON, raw generator output accepted
func CreateSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxCourseBody)
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				http.Error(w, "course body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		c, err := course.Decode(raw)
		if err != nil {
			fail(w, err)
			return
		}
		s, err := store.Create(c)
		if err != nil {
			fail(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"id": s.ID})
	}
}

// GET /sessions/{id}
func GetSessionHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		respondJSON(w, http.StatusOK, s.View())
	})
}

// POST /sessions/{id}/devmode/toggle
func ToggleDevModeHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		respondJSON(w, http.StatusOK, map[string]bool{"dev_mode": s.ToggleDevMode()})
	})
}

// PUT /sessions/{id}/devmode {enabled}
func SetDevModeHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req struct {
			Enabled *bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
			http.Error(w, "enabled required", http.StatusBadRequest)
			return
		}
		s.SetDevMode(*req.Enabled)
		respondJSON(w, http.StatusOK, map[string]bool{"dev_mode": *req.Enabled})
	})
}

// PUT /sessions/{id}/tab {tab}
func SetTabHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		var req struct {
			Tab string `json:"tab"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := s.SetActiveTab(req.Tab); err != nil {
			fail(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"active_tab": s.ActiveTab()})
	})
}

// POST /sessions/{id}/menu/toggle
func ToggleMenuHandler(store session.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		respondJSON(w, http.StatusOK, map[string]bool{"menu_open": s.ToggleMenu()})
	})
}

func withSession(store session.Store, h func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.Get(chi.URLParam(r, "id"))
		if err != nil {
			fail(w, err)
			return
		}
		h(w, r, s)
	}
}
