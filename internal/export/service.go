// Package export dispatches the four export actions for a course session:
// print, Markdown, SCORM and H5P.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/ledger"
	"github.com/VictoriaCloud360/CursoAPP/internal/logger"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
	"github.com/VictoriaCloud360/CursoAPP/internal/storage"

	// adapters register themselves
	_ "github.com/VictoriaCloud360/CursoAPP/internal/formats/h5p"
	_ "github.com/VictoriaCloud360/CursoAPP/internal/formats/markdown"
	_ "github.com/VictoriaCloud360/CursoAPP/internal/formats/printview"
	_ "github.com/VictoriaCloud360/CursoAPP/internal/formats/scorm"
)

// Artifact is one finished export.
type Artifact struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"session_id,omitempty"`
	Format      formats.Format `json:"format"`
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type"`
	Inline      bool           `json:"inline"`
	Key         string         `json:"-"` // blob key, set when a store is configured
	Checksum    string         `json:"checksum"`
	Size        int64          `json:"bytes"`
	CreatedAt   time.Time      `json:"created_at"`
	Data        []byte         `json:"-"`
}

type Service struct {
	archiver archive.Archiver
	store    storage.BlobStore
	ledger   ledger.Store
	lang     string
	now      func() time.Time
	log      *logger.Logger
}

type Option func(*Service)

// WithArchiver sets the archiver used by packaged formats. Without one,
// SCORM and H5P exports fail with ErrArchiverUnavailable.
func WithArchiver(a archive.Archiver) Option { return func(s *Service) { s.archiver = a } }

// WithStore keeps every artifact in a blob store under <session>/<id><ext>.
func WithStore(b storage.BlobStore) Option { return func(s *Service) { s.store = b } }

func WithLedger(l ledger.Store) Option { return func(s *Service) { s.ledger = l } }

func WithLanguage(lang string) Option { return func(s *Service) { s.lang = lang } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithLogger(l *logger.Logger) Option { return func(s *Service) { s.log = l } }

func New(opts ...Option) *Service {
	s := &Service{lang: "es", now: time.Now, log: logger.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CanPackage reports whether packaged formats are available.
func (s *Service) CanPackage() bool { return s.archiver != nil }

// Export runs one export action for a session. The export menu is closed
// first and only one export per session may run at a time.
func (s *Service) Export(ctx context.Context, sess *session.Session, f formats.Format) (Artifact, error) {
	sess.CloseMenu()
	release, err := sess.BeginExport()
	if err != nil {
		return Artifact{}, err
	}
	defer release()

	log := s.log.With("session_id", sess.ID, "format", string(f))
	a, err := s.build(ctx, sess.Course(), sess.Resources(), f)
	if err != nil {
		log.Warn("export failed", "error", err)
		return Artifact{}, err
	}
	a.SessionID = sess.ID

	if s.store != nil {
		key := path.Join(sess.ID, a.ID+path.Ext(a.Filename))
		k, err := s.store.Put(ctx, key, bytes.NewReader(a.Data))
		if err != nil {
			log.Error("store artifact", "error", err)
			return Artifact{}, fmt.Errorf("store artifact: %w", err)
		}
		a.Key = k
	}
	if s.ledger != nil {
		err := s.ledger.Append(ctx, ledger.Entry{
			ID:        a.ID,
			SessionID: a.SessionID,
			Format:    string(a.Format),
			Filename:  a.Filename,
			Bytes:     a.Size,
			Checksum:  a.Checksum,
			CreatedAt: a.CreatedAt,
		})
		if err != nil {
			// best effort
			log.Warn("ledger append failed", "export_id", a.ID, "error", err)
		}
	}
	log.Info("export finished", "export_id", a.ID, "filename", a.Filename, "bytes", a.Size)
	return a, nil
}

// ExportCourse builds an artifact outside any session, e.g. from the CLI.
// A nil resources list means the default suggested resources.
func (s *Service) ExportCourse(ctx context.Context, c course.Course, resources []course.Resource, f formats.Format) (Artifact, error) {
	return s.build(ctx, c, resources, f)
}

func (s *Service) build(ctx context.Context, c course.Course, resources []course.Resource, f formats.Format) (Artifact, error) {
	adapter, ok := formats.Lookup(f)
	if !ok {
		return Artifact{}, fmt.Errorf("%w: %q", formats.ErrUnknownFormat, f)
	}
	desc := adapter.Descriptor()
	if desc.Packaged && s.archiver == nil {
		return Artifact{}, ErrArchiverUnavailable
	}
	if err := c.Validate(); err != nil {
		return Artifact{}, err
	}
	if resources == nil {
		resources = course.DefaultResources()
	}

	data, err := adapter.Export(ctx, c, formats.Options{
		Resources: resources,
		Archiver:  s.archiver,
		Language:  s.lang,
		Now:       s.now,
	})
	if err != nil {
		if errors.Is(err, formats.ErrNoArchiver) {
			return Artifact{}, fmt.Errorf("%w: %w", ErrArchiverUnavailable, err)
		}
		return Artifact{}, fmt.Errorf("export %s: %w", f, err)
	}
	return Artifact{
		ID:          uuid.NewString(),
		Format:      f,
		Filename:    desc.Filename(c.Title),
		ContentType: desc.ContentType,
		Inline:      desc.Inline,
		Checksum:    ledger.Checksum(data),
		Size:        int64(len(data)),
		CreatedAt:   s.now().UTC(),
		Data:        data,
	}, nil
}
