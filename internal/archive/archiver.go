package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"io/fs"
	"time"

	"github.com/klauspost/compress/flate"
)

// Archiver turns a Bundle into archive bytes.
type Archiver interface {
	Pack(ctx context.Context, b *Bundle) ([]byte, error)
}

// ZipArchiver writes deflate-compressed zip archives.
type ZipArchiver struct {
	Level int
	Clock func() time.Time
}

func NewZipArchiver(level int) *ZipArchiver {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		level = flate.DefaultCompression
	}
	return &ZipArchiver{Level: level, Clock: time.Now}
}

func (z *ZipArchiver) Pack(ctx context.Context, b *Bundle) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	level := z.Level
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})

	modified := time.Now()
	if z.Clock != nil {
		modified = z.Clock()
	}
	for _, e := range b.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hdr := &zip.FileHeader{Name: e.Name, Method: zip.Deflate, Modified: modified}
		if e.IsDir() {
			hdr.Method = zip.Store
			hdr.SetMode(fs.ModeDir | 0o755)
		} else {
			hdr.SetMode(0o644)
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
