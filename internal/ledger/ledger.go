// Package ledger records every completed export.
package ledger

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"
)

type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Format    string    `json:"format"`
	Filename  string    `json:"filename"`
	Bytes     int64     `json:"bytes"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, sessionID string, limit int) ([]Entry, error)
}

// Checksum is the hex BLAKE2b-256 of an artifact.
func Checksum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

const defaultLimit = 50

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO exports (id,session_id,format,filename,bytes,checksum,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.SessionID, e.Format, e.Filename, e.Bytes, e.Checksum, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert export: %w", err)
	}
	return nil
}

// List returns a session's exports newest first.
func (s *SQLStore) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,session_id,format,filename,bytes,checksum,created_at
		FROM exports WHERE session_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Format, &e.Filename, &e.Bytes, &e.Checksum, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// MemoryStore is used when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Append(_ context.Context, e Entry) error {
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) List(_ context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Entry
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if m.entries[i].SessionID == sessionID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}
