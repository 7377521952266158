package export

import (
	"errors"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
)

// ErrArchiverUnavailable aborts a packaged export before anything is built.
var ErrArchiverUnavailable = errors.New("archiving library unavailable")

const (
	msgNoArchiver = "Error: Librería de compresión no cargada. Por favor recarga la página."
	msgInFlight   = "Ya hay una exportación en curso. Espera a que termine."
	msgFormat     = "Formato de exportación no soportado."
	msgInvalid    = "El curso no es válido y no se puede exportar."
	msgGeneric    = "No se pudo exportar el curso. Inténtalo de nuevo."
)

// UserMessage is the one blocking message shown when an export fails.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrArchiverUnavailable), errors.Is(err, formats.ErrNoArchiver):
		return msgNoArchiver
	case errors.Is(err, session.ErrExportInFlight):
		return msgInFlight
	case errors.Is(err, formats.ErrUnknownFormat):
		return msgFormat
	case errors.Is(err, course.ErrInvalidCourse):
		return msgInvalid
	default:
		return msgGeneric
	}
}
