package http

import (
	"io"
	"net/http"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
)

const maxPackageUpload = 32 << 20

// POST /packages/inspect (multipart: file=package.zip|package.h5p)
func InspectPackageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxPackageUpload)
		f, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "read upload: "+err.Error(), http.StatusBadRequest)
			return
		}
		rep, err := archive.InspectBytes(b)
		if err != nil {
			http.Error(w, "inspect: "+err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusOK, rep)
	}
}
