// Package markdown flattens a course into a single Markdown document.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
)

func init() { formats.Register(Adapter{}) }

type Adapter struct{}

func (Adapter) Descriptor() formats.Descriptor {
	return formats.Descriptor{
		Format:      formats.Markdown,
		Extension:   ".md",
		ContentType: "text/markdown; charset=utf-8",
	}
}

func (Adapter) Export(_ context.Context, c course.Course, _ formats.Options) ([]byte, error) {
	return []byte(Build(c)), nil
}

// Build renders the course. The quiz is listed without its answer key.
func Build(c course.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "%s\n\n", c.Introduction)
	b.WriteString("---\n\n")

	for i, m := range c.Modules {
		fmt.Fprintf(&b, "## Módulo %d: %s\n\n", i+1, m.Title)
		fmt.Fprintf(&b, "%s\n\n", m.Content)
		b.WriteString("### Puntos Clave\n")
		for _, p := range m.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n---\n\n")
	}

	b.WriteString("## Evaluación Final\n\n")
	for i, q := range c.Quiz {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "   - %s\n", opt)
		}
		b.WriteString("\n")
	}
	return b.String()
}
