package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VictoriaCloud360/CursoAPP/internal/download"
	"github.com/VictoriaCloud360/CursoAPP/internal/export"
	"github.com/VictoriaCloud360/CursoAPP/internal/ledger"
	"github.com/VictoriaCloud360/CursoAPP/internal/logger"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
	"github.com/VictoriaCloud360/CursoAPP/internal/storage"
)

type Deps struct {
	Sessions  session.Store
	Exports   *export.Service
	Ledger    ledger.Store
	Blobs     storage.BlobStore
	Tickets   *download.Issuer
	PublicURL string // prefix for download links, may be empty for relative links
	Log       *logger.Logger

	// Ready reports dependency health for /readyz; nil means always ready.
	Ready func(ctx context.Context) error
}

// Mount registers every route on r.
func Mount(r chi.Router, d Deps) {
	if d.Log == nil {
		d.Log = logger.Nop()
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ready != nil {
			if err := d.Ready(r.Context()); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/sessions", CreateSessionHandler(d.Sessions))
	r.Route("/sessions/{id}", func(sr chi.Router) {
		sr.Get("/", GetSessionHandler(d.Sessions))
		sr.Post("/devmode/toggle", ToggleDevModeHandler(d.Sessions))
		sr.Put("/devmode", SetDevModeHandler(d.Sessions))
		sr.Put("/tab", SetTabHandler(d.Sessions))
		sr.Post("/menu/toggle", ToggleMenuHandler(d.Sessions))

		sr.Post("/resources", AddResourceHandler(d.Sessions))
		sr.Patch("/resources/{index}", UpdateResourceHandler(d.Sessions))
		sr.Delete("/resources/{index}", DeleteResourceHandler(d.Sessions))

		sr.Post("/quiz", SubmitQuizHandler(d.Sessions))

		sr.Post("/exports", CreateExportHandler(d.Sessions, d.Exports, d.Tickets, d.Blobs, d.PublicURL, d.Log))
		sr.Get("/exports", ListExportsHandler(d.Sessions, d.Ledger))
	})

	r.Get("/downloads/{ticket}", DownloadHandler(d.Tickets, d.Blobs, d.Log))
	r.Post("/packages/inspect", InspectPackageHandler())
}
