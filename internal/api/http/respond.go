package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/download"
	"github.com/VictoriaCloud360/CursoAPP/internal/export"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
	"github.com/VictoriaCloud360/CursoAPP/internal/storage"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, download.ErrInvalidTicket),
		errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrExportInFlight):
		return http.StatusConflict
	case errors.Is(err, session.ErrDevModeRequired):
		return http.StatusForbidden
	case errors.Is(err, session.ErrIncompleteQuiz):
		return http.StatusUnprocessableEntity
	case errors.Is(err, export.ErrArchiverUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, course.ErrInvalidCourse),
		errors.Is(err, formats.ErrUnknownFormat),
		errors.Is(err, session.ErrResourceIndex),
		errors.Is(err, session.ErrResourceField),
		errors.Is(err, session.ErrUnknownTab),
		errors.Is(err, session.ErrAnswerOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with its mapped status. Server errors get a generic text.
func fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
