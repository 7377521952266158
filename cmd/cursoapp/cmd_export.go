package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/config"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/export"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
)

func cmdExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "", "markdown|scorm|h5p|print")
	in := fs.String("in", "", "course JSON file")
	outDir := fs.String("out", ".", "output directory")
	resFile := fs.String("resources", "", "optional JSON list of {title,url} suggested resources")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format == "" || *in == "" {
		return fmt.Errorf("-format and -in are required (e.g., cursoapp export -format scorm -in course.json)")
	}
	f, err := formats.ParseFormat(*format)
	if err != nil {
		return err
	}
	c, err := readCourse(*in)
	if err != nil {
		return err
	}
	var resources []course.Resource
	if *resFile != "" {
		b, err := os.ReadFile(*resFile)
		if err != nil {
			return fmt.Errorf("read resources: %w", err)
		}
		if err := json.Unmarshal(b, &resources); err != nil {
			return fmt.Errorf("parse resources: %w", err)
		}
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts := []export.Option{export.WithLanguage(cfg.PackageLanguage)}
	if cfg.ArchiverEnabled {
		opts = append(opts, export.WithArchiver(archive.NewZipArchiver(cfg.CompressionLevel)))
	}
	svc := export.New(opts...)

	a, err := svc.ExportCourse(context.Background(), c, resources, f)
	if err != nil {
		if errors.Is(err, export.ErrArchiverUnavailable) {
			return errors.New(export.UserMessage(err))
		}
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}
	dst := filepath.Join(*outDir, a.Filename)
	if err := os.WriteFile(dst, a.Data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s  %d bytes  blake2b:%s\n", dst, a.Size, a.Checksum)
	return nil
}

func readCourse(path string) (course.Course, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return course.Course{}, fmt.Errorf("read course: %w", err)
	}
	return course.Decode(raw)
}
