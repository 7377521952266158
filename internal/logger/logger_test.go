package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedaction(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromCore(core)

	l.Info("issued",
		"download_ticket", "abc",
		"DOWNLOAD_SECRET", "s3cr3t",
		"header", "eyJhbGciOiJIUzI1NiJ9.eyJrZXkiOiJzZXNzIn0.sig",
		"format", "scorm",
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	fields := entries[0].ContextMap()
	for _, k := range []string{"download_ticket", "DOWNLOAD_SECRET", "header"} {
		if fields[k] != redacted {
			t.Errorf("%s = %v, want redacted", k, fields[k])
		}
	}
	if fields["format"] != "scorm" {
		t.Errorf("format = %v", fields["format"])
	}
}

func TestWithKeepsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromCore(core).With("session_id", "s1")
	l.Debug("export started")
	if got := logs.All()[0].ContextMap()["session_id"]; got != "s1" {
		t.Fatalf("session_id = %v", got)
	}
}

func TestOddKVAndNop(t *testing.T) {
	got := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Fatalf("got %v", got)
	}
	Nop().Info("discarded", "k", "v")
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		l.Sync()
	}
}
