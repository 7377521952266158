package db

import (
	"context"
	"testing"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, "file::memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM exports`).Scan(&n); err != nil {
		t.Fatalf("exports table missing: %v", err)
	}
	if n != 0 {
		t.Fatalf("fresh table has %d rows", n)
	}
	// idempotent
	if err := ensureSchema(ctx, conn, DriverSQLite); err != nil {
		t.Fatal(err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Driver("mysql"), ""); err == nil {
		t.Fatal("want error for unsupported driver")
	}
}
