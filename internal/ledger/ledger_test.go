package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/VictoriaCloud360/CursoAPP/internal/db"
)

func TestChecksum(t *testing.T) {
	a, b := Checksum([]byte("scorm")), Checksum([]byte("h5p"))
	if len(a) != 64 || a == b {
		t.Fatalf("checksums %s / %s", a, b)
	}
	if Checksum([]byte("scorm")) != a {
		t.Fatal("checksum not stable")
	}
}

func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, f := range []string{"markdown", "scorm", "h5p"} {
		e := Entry{
			ID:        f + "-id",
			SessionID: "s1",
			Format:    f,
			Filename:  "x." + f,
			Bytes:     int64(100 * (i + 1)),
			Checksum:  Checksum([]byte(f)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := s.Append(ctx, Entry{ID: "other", SessionID: "s2", Format: "print", CreatedAt: base}); err != nil {
		t.Fatal(err)
	}

	got, err := s.List(ctx, "s1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].Format != "h5p" || got[2].Format != "markdown" {
		t.Fatalf("list = %+v", got)
	}
	if !got[0].CreatedAt.Equal(base.Add(2*time.Minute)) || got[0].Bytes != 300 {
		t.Fatalf("entry = %+v", got[0])
	}
	got, _ = s.List(ctx, "s1", 1)
	if len(got) != 1 || got[0].Format != "h5p" {
		t.Fatalf("limited list = %+v", got)
	}
}

func TestSQLStoreSQLite(t *testing.T) {
	conn, err := db.Open(context.Background(), db.DriverSQLite, "file::memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	exercise(t, NewSQLStore(conn))
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}
