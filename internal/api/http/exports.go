package http

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/VictoriaCloud360/CursoAPP/internal/download"
	"github.com/VictoriaCloud360/CursoAPP/internal/export"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/ledger"
	"github.com/VictoriaCloud360/CursoAPP/internal/logger"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
	"github.com/VictoriaCloud360/CursoAPP/internal/storage"
)

type exportResponse struct {
	ExportID    string         `json:"export_id"`
	Format      formats.Format `json:"format"`
	Filename    string         `json:"filename"`
	Bytes       int64          `json:"bytes"`
	Checksum    string         `json:"checksum"`
	DownloadURL string         `json:"download_url"`
	ExpiresIn   int            `json:"expires_in"` // seconds
}

// POST /sessions/{id}/exports?format=print|markdown|scorm|h5p
// An artifact whose ticket cannot be issued is deleted right away.
func CreateExportHandler(store session.Store, svc *export.Service, tickets *download.Issuer, bs storage.BlobStore, publicURL string, log *logger.Logger) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		f, err := formats.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			http.Error(w, export.UserMessage(err), http.StatusBadRequest)
			return
		}
		a, err := svc.Export(r.Context(), s, f)
		if err != nil {
			status := statusFor(err)
			http.Error(w, export.UserMessage(err), status)
			return
		}
		tok, err := tickets.Issue(download.Artifact{
			ID:          a.ID,
			Key:         a.Key,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Inline:      a.Inline,
			Checksum:    a.Checksum,
		})
		if err != nil {
			log.Error("issue download ticket", "export_id", a.ID, "error", err)
			if a.Key != "" && bs != nil {
				if derr := bs.Delete(r.Context(), a.Key); derr != nil {
					log.Warn("release artifact", "export_id", a.ID, "error", derr)
				}
			}
			http.Error(w, "issue ticket", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, exportResponse{
			ExportID:    a.ID,
			Format:      a.Format,
			Filename:    a.Filename,
			Bytes:       a.Size,
			Checksum:    a.Checksum,
			DownloadURL: publicURL + "/downloads/" + tok,
			ExpiresIn:   int(tickets.TTL().Seconds()),
		})
	})
}

// GET /sessions/{id}/exports?limit=n
func ListExportsHandler(store session.Store, led ledger.Store) http.HandlerFunc {
	return withSession(store, func(w http.ResponseWriter, r *http.Request, s *session.Session) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries, err := led.List(r.Context(), s.ID, limit)
		if err != nil {
			fail(w, err)
			return
		}
		if entries == nil {
			entries = []ledger.Entry{}
		}
		respondJSON(w, http.StatusOK, map[string]any{"exports": entries})
	})
}

// GET /downloads/{ticket}
// The ticket is single use and the artifact is deleted once it has been sent.
// A store error leaves the ticket valid for another try.
func DownloadHandler(tickets *download.Issuer, bs storage.BlobStore, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := tickets.Parse(chi.URLParam(r, "ticket"))
		if err != nil {
			fail(w, err)
			return
		}
		if tickets.Used(c) {
			fail(w, download.ErrInvalidTicket)
			return
		}
		rc, err := bs.Get(r.Context(), c.Key)
		if err != nil {
			fail(w, err)
			return
		}
		if err := tickets.Consume(c); err != nil {
			rc.Close()
			fail(w, err)
			return
		}
		defer func() {
			rc.Close()
			if err := bs.Delete(r.Context(), c.Key); err != nil {
				log.Warn("release artifact", "export_id", c.ID, "error", err)
			}
		}()

		disposition := "attachment"
		if c.Inline {
			disposition = "inline"
		}
		w.Header().Set("Content-Type", c.ContentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": c.Filename}))
		if c.Checksum != "" {
			w.Header().Set("ETag", fmt.Sprintf("%q", c.Checksum))
		}
		w.Header().Set("Cache-Control", "no-store")
		_, _ = io.Copy(w, rc)
	}
}
