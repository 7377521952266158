// Package printview renders a print-ready HTML page of a course. The browser
// opens its print dialog on load, which is how users save a PDF.
package printview

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/markup"
)

//go:embed print.html.tmpl
var pageSource string

var pageTmpl = template.Must(template.New("print").Parse(pageSource))

func init() { formats.Register(Adapter{}) }

type Adapter struct{}

func (Adapter) Descriptor() formats.Descriptor {
	return formats.Descriptor{
		Format:      formats.Print,
		Extension:   ".html",
		ContentType: "text/html; charset=utf-8",
		Inline:      true,
	}
}

type pageModule struct {
	Number    int
	Title     string
	Content   template.HTML
	KeyPoints []string
}

type pageQuestion struct {
	Number   int
	Question string
	Options  []string
}

type pageData struct {
	Lang         string
	Title        string
	Introduction string
	Modules      []pageModule
	Quiz         []pageQuestion
}

func (Adapter) Export(_ context.Context, c course.Course, opts formats.Options) ([]byte, error) {
	d := pageData{Lang: opts.Lang(), Title: c.Title, Introduction: c.Introduction}
	for i, m := range c.Modules {
		d.Modules = append(d.Modules, pageModule{Number: i + 1, Title: m.Title, Content: markup.HTML(m.Content), KeyPoints: m.KeyPoints})
	}
	for i, q := range c.Quiz {
		d.Quiz = append(d.Quiz, pageQuestion{Number: i + 1, Question: q.Question, Options: q.Options})
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("render print view: %w", err)
	}
	return buf.Bytes(), nil
}
