package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/VictoriaCloud360/CursoAPP/internal/logger"
)

// FSStore keeps artifacts as files under base. Files never expire on their
// own; Sweep (or RunSweeper) removes the ones nobody downloaded.
type FSStore struct {
	base string
	now  func() time.Time
}

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data/exports"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base, now: time.Now}, nil
}

func (s *FSStore) path(key string) (string, string, error) {
	k, err := CleanKey(key)
	if err != nil {
		return "", "", err
	}
	return k, filepath.Join(s.base, filepath.FromSlash(k)), nil
}

// Put writes through a temp file so a failed write never leaves a partial
// artifact behind.
func (s *FSStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	k, dst, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(filepath.Dir(dst), ".part-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return k, nil
}

func (s *FSStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	_, p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

func (s *FSStore) Delete(_ context.Context, key string) error {
	_, p, err := s.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (s *FSStore) Ping(context.Context) error {
	_, err := os.Stat(s.base)
	return err
}

// Sweep deletes artifacts and abandoned partial writes last modified more
// than maxAge ago. It returns how many files were removed.
func (s *FSStore) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := s.now().Add(-maxAge)
	removed := 0
	err := filepath.WalkDir(s.base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *FSStore) RunSweeper(ctx context.Context, maxAge, interval time.Duration, log *logger.Logger) error {
	if interval <= 0 {
		interval = maxAge
	}
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			n, err := s.Sweep(ctx, maxAge)
			if err != nil && ctx.Err() == nil {
				log.Warn("artifact sweep failed", "error", err)
				continue
			}
			if n > 0 {
				log.Info("expired artifacts removed", "count", n)
			}
		}
	}
}
