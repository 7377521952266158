package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course/coursetest"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/ledger"
	"github.com/VictoriaCloud360/CursoAPP/internal/session"
	"github.com/VictoriaCloud360/CursoAPP/internal/storage"
)

type failingArchiver struct{ calls int }

func (f *failingArchiver) Pack(context.Context, *archive.Bundle) ([]byte, error) {
	f.calls++
	return nil, errors.New("disk full")
}

// gatedArchiver blocks every Pack call until the gate opens or the caller's
// context ends.
type gatedArchiver struct {
	gate    chan struct{}
	started chan struct{}
	zip     archive.Archiver
}

func newGatedArchiver() *gatedArchiver {
	return &gatedArchiver{
		gate:    make(chan struct{}),
		started: make(chan struct{}, 8),
		zip:     archive.NewZipArchiver(-1),
	}
}

func (g *gatedArchiver) Pack(ctx context.Context, b *archive.Bundle) ([]byte, error) {
	g.started <- struct{}{}
	select {
	case <-g.gate:
		return g.zip.Pack(ctx, b)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func waitStarted(t *testing.T, g *gatedArchiver) {
	t.Helper()
	select {
	case <-g.started:
	case <-time.After(5 * time.Second):
		t.Fatal("build did not start")
	}
}

type harness struct {
	svc    *Service
	sess   *session.Session
	ledger *ledger.MemoryStore
	dir    string
}

func newHarness(t *testing.T, a archive.Archiver) harness {
	t.Helper()
	dir := t.TempDir()
	blobs, err := storage.NewFSStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	led := ledger.NewMemoryStore()
	opts := []Option{
		WithStore(blobs),
		WithLedger(led),
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
	}
	if a != nil {
		opts = append(opts, WithArchiver(a))
	}
	sess, err := session.NewMemoryStore().Create(coursetest.Sample())
	if err != nil {
		t.Fatal(err)
	}
	return harness{svc: New(opts...), sess: sess, ledger: led, dir: dir}
}

func (h harness) files(t *testing.T) []string {
	t.Helper()
	var out []string
	filepath.WalkDir(h.dir, func(p string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			out = append(out, p)
		}
		return nil
	})
	return out
}

func TestExportMarkdownClosesMenuAndRecords(t *testing.T) {
	h := newHarness(t, nil)
	h.sess.ToggleMenu()

	a, err := h.svc.Export(context.Background(), h.sess, formats.Markdown)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if h.sess.MenuOpen() {
		t.Fatal("menu left open")
	}
	if a.Filename != "introapython3.md" || a.ContentType != "text/markdown; charset=utf-8" || a.SessionID != h.sess.ID {
		t.Fatalf("artifact = %+v", a)
	}
	if !strings.HasPrefix(string(a.Data), "# Intro a Python 3!") || a.Size != int64(len(a.Data)) {
		t.Fatal("unexpected body")
	}
	if a.Key == "" || len(h.files(t)) != 1 {
		t.Fatalf("artifact not stored: key=%q files=%v", a.Key, h.files(t))
	}
	entries, _ := h.ledger.List(context.Background(), h.sess.ID, 0)
	if len(entries) != 1 || entries[0].ID != a.ID || entries[0].Checksum != ledger.Checksum(a.Data) {
		t.Fatalf("ledger = %+v", entries)
	}
}

func TestPackagedExportWithoutArchiver(t *testing.T) {
	for _, f := range []formats.Format{formats.SCORM, formats.H5P} {
		h := newHarness(t, nil)
		_, err := h.svc.Export(context.Background(), h.sess, f)
		if !errors.Is(err, ErrArchiverUnavailable) {
			t.Fatalf("%s: err = %v", f, err)
		}
		if got := UserMessage(err); got != "Error: Librería de compresión no cargada. Por favor recarga la página." {
			t.Fatalf("message = %q", got)
		}
		if len(h.files(t)) != 0 {
			t.Fatal("partial artifact written")
		}
		if entries, _ := h.ledger.List(context.Background(), h.sess.ID, 0); len(entries) != 0 {
			t.Fatal("failed export recorded")
		}
	}
}

func TestPrintNeedsNoArchiver(t *testing.T) {
	h := newHarness(t, nil)
	a, err := h.svc.Export(context.Background(), h.sess, formats.Print)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Inline || a.Filename != "introapython3.html" {
		t.Fatalf("artifact = %+v", a)
	}
}

func TestExportSCORMAndH5P(t *testing.T) {
	h := newHarness(t, archive.NewZipArchiver(-1))
	want := map[formats.Format]string{
		formats.SCORM: "SCORM_introapython3.zip",
		formats.H5P:   "H5P_introapython3.h5p",
	}
	for f, name := range want {
		a, err := h.svc.Export(context.Background(), h.sess, f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if a.Filename != name {
			t.Errorf("%s filename = %s", f, a.Filename)
		}
		rep, err := archive.InspectBytes(a.Data)
		if err != nil || len(rep.Entries) != 2 {
			t.Fatalf("%s: %v %v", f, err, rep.Entries)
		}
	}
	entries, _ := h.ledger.List(context.Background(), h.sess.ID, 0)
	if len(entries) != 2 {
		t.Fatalf("ledger entries = %d", len(entries))
	}
}

func TestArchiverFailureWritesNothing(t *testing.T) {
	fa := &failingArchiver{}
	h := newHarness(t, fa)
	if _, err := h.svc.Export(context.Background(), h.sess, formats.SCORM); err == nil {
		t.Fatal("want error")
	}
	if fa.calls != 1 {
		t.Fatalf("archiver calls = %d (no retries expected)", fa.calls)
	}
	if len(h.files(t)) != 0 {
		t.Fatal("artifact written after failure")
	}
	// the slot is released after a failure
	if _, err := h.svc.Export(context.Background(), h.sess, formats.Markdown); err != nil {
		t.Fatalf("next export: %v", err)
	}
}

func TestExportInFlight(t *testing.T) {
	h := newHarness(t, nil)
	release, err := h.sess.BeginExport()
	if err != nil {
		t.Fatal(err)
	}
	defer release()
	_, err = h.svc.Export(context.Background(), h.sess, formats.Markdown)
	if !errors.Is(err, session.ErrExportInFlight) {
		t.Fatalf("err = %v", err)
	}
	if UserMessage(err) == "" {
		t.Fatal("no user message")
	}
}

func TestUnknownFormat(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.svc.Export(context.Background(), h.sess, formats.Format("docx"))
	if !errors.Is(err, formats.ErrUnknownFormat) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportCourseWithoutSession(t *testing.T) {
	svc := New(WithArchiver(archive.NewZipArchiver(9)), WithLanguage("pt-BR"))
	a, err := svc.ExportCourse(context.Background(), coursetest.Sample(), nil, formats.H5P)
	if err != nil {
		t.Fatal(err)
	}
	rep, _ := archive.InspectBytes(a.Data)
	if rep.H5P == nil || rep.H5P.Language != "pt-BR" {
		t.Fatalf("report = %+v", rep)
	}
	if a.SessionID != "" || a.Key != "" {
		t.Fatal("session-less export should not be stored")
	}
}

func TestConcurrentSessionsBuildIndependently(t *testing.T) {
	g := newGatedArchiver()
	h := newHarness(t, g)
	other, err := session.NewMemoryStore().Create(coursetest.Sample())
	if err != nil {
		t.Fatal(err)
	}

	type result struct {
		a   Artifact
		err error
	}
	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()
	doneA := make(chan result, 1)
	go func() {
		a, err := h.svc.Export(ctxA, h.sess, formats.SCORM)
		doneA <- result{a, err}
	}()
	waitStarted(t, g)

	doneB := make(chan result, 1)
	go func() {
		a, err := h.svc.Export(context.Background(), other, formats.SCORM)
		doneB <- result{a, err}
	}()
	// the second session runs its own build instead of joining the first
	waitStarted(t, g)

	cancelA()
	ra := <-doneA
	if !errors.Is(ra.err, context.Canceled) {
		t.Fatalf("cancelled export err = %v", ra.err)
	}
	close(g.gate)
	rb := <-doneB
	if rb.err != nil {
		t.Fatalf("live export failed after the other was cancelled: %v", rb.err)
	}
	if rb.a.SessionID != other.ID {
		t.Fatalf("artifact session = %q", rb.a.SessionID)
	}
	rep, err := archive.InspectBytes(rb.a.Data)
	if err != nil || rep.Kind != archive.KindSCORM {
		t.Fatalf("package: %v %+v", err, rep)
	}
	if entries, _ := h.ledger.List(context.Background(), h.sess.ID, 0); len(entries) != 0 {
		t.Fatal("cancelled export recorded")
	}
	if entries, _ := h.ledger.List(context.Background(), other.ID, 0); len(entries) != 1 {
		t.Fatalf("ledger for live session = %d entries", len(entries))
	}
}
