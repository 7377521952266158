package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
)

func cmdInspect(args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("package path required (e.g., cursoapp inspect SCORM_curso.zip)")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	rep, err := archive.Inspect(f, info.Size())
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	fmt.Fprintf(out, "kind: %s\n", rep.Kind)
	fmt.Fprintf(out, "entries (%d):\n", len(rep.Entries))
	for _, e := range rep.Entries {
		fmt.Fprintf(out, "  %s\n", e)
	}
	if len(rep.Directories) > 0 {
		fmt.Fprintf(out, "warning: bare directory entries: %s\n", strings.Join(rep.Directories, ", "))
	}
	switch {
	case rep.SCORM != nil:
		fmt.Fprintf(out, "identifier: %s\nschema version: %s\ntitle: %s\nlaunch: %s\n",
			rep.SCORM.Identifier, rep.SCORM.SchemaVersion, rep.SCORM.Title, strings.Join(rep.SCORM.Launch, ", "))
	case rep.H5P != nil:
		fmt.Fprintf(out, "title: %s\nlanguage: %s\nmain library: %s\nblocks: %d\ndependencies:\n",
			rep.H5P.Title, rep.H5P.Language, rep.H5P.MainLibrary, rep.H5P.Blocks)
		for _, d := range rep.H5P.Dependencies {
			fmt.Fprintf(out, "  %s\n", d)
		}
	}
	return nil
}

func cmdValidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	in := fs.String("in", "", "course JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required (e.g., cursoapp validate -in course.json)")
	}
	c, err := readCourse(*in)
	if err != nil {
		var ve *course.ValidationError
		if errors.As(err, &ve) {
			for _, p := range ve.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
		}
		return err
	}
	fmt.Fprintf(out, "ok: %q, %d modules, %d questions\n", c.Title, len(c.Modules), len(c.Quiz))
	return nil
}
