// Package h5p builds .h5p packages that model a course as an H5P.Column of
// text and multiple-choice blocks.
package h5p

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
	"github.com/VictoriaCloud360/CursoAPP/internal/markup"
)

func init() { formats.Register(Adapter{}) }

const (
	manifestFile = "h5p.json"
	contentDir   = "content/"
	contentFile  = contentDir + "content.json"

	imageWidth  = 800
	imageHeight = 400
)

type Adapter struct{}

func (Adapter) Descriptor() formats.Descriptor {
	return formats.Descriptor{
		Format:      formats.H5P,
		Prefix:      "H5P_",
		Extension:   ".h5p",
		ContentType: "application/zip",
		Packaged:    true,
	}
}

func (Adapter) Export(ctx context.Context, c course.Course, opts formats.Options) ([]byte, error) {
	if opts.Archiver == nil {
		return nil, formats.ErrNoArchiver
	}
	b, err := Bundle(c, opts.Lang())
	if err != nil {
		return nil, err
	}
	return opts.Archiver.Pack(ctx, b)
}

// Bundle lays out h5p.json and content/content.json. The "content/" folder
// entry the bundle records is dropped again: H5P validators reject bare
// directory entries.
func Bundle(c course.Course, lang string) (*archive.Bundle, error) {
	mf, err := marshal(BuildManifest(c, lang))
	if err != nil {
		return nil, fmt.Errorf("h5p.json: %w", err)
	}
	content, err := marshal(BuildContent(c))
	if err != nil {
		return nil, fmt.Errorf("content.json: %w", err)
	}
	b := archive.NewBundle()
	b.AddFile(manifestFile, mf)
	b.AddFile(contentFile, content)
	b.Remove(contentDir)
	return b, nil
}

func BuildManifest(c course.Course, lang string) Manifest {
	deps := make([]Dependency, len(preloaded))
	copy(deps, preloaded)
	return Manifest{
		Title:                 c.Title,
		Language:              lang,
		MainLibrary:           mainLibrary,
		EmbedTypes:            []string{"div"},
		License:               "U",
		PreloadedDependencies: deps,
	}
}

// BuildContent returns the column blocks in order: intro, one per module,
// the quiz divider, then one multiple choice per question.
func BuildContent(c course.Course) Content {
	blocks := make([]Block, 0, len(c.Modules)+len(c.Quiz)+2)
	blocks = append(blocks, textBlock(fmt.Sprintf(
		`<div style="text-align:center; padding: 20px;"><h1>%s</h1><p>%s</p></div>`,
		html.EscapeString(c.Title), html.EscapeString(c.Introduction))))

	for i, m := range c.Modules {
		blocks = append(blocks, textBlock(moduleHTML(i, m)))
	}

	blocks = append(blocks, textBlock("<h2>Evaluación de Conocimientos</h2><p>Pon a prueba lo aprendido:</p>"))

	for _, q := range c.Quiz {
		answers := make([]Answer, len(q.Options))
		for j, opt := range q.Options {
			answers[j] = Answer{
				Text:    "<div>" + html.EscapeString(opt) + "</div>",
				Correct: j == q.CorrectAnswer,
			}
		}
		blocks = append(blocks, Block{Content: Library{
			Library: multiChoiceLibrary,
			Params: MultiChoiceParams{
				Question:  "<p>" + html.EscapeString(q.Question) + "</p>",
				Answers:   answers,
				Behaviour: defaultBehaviour,
			},
		}})
	}
	return Content{UseSeparator: "auto", Content: blocks}
}

func moduleHTML(idx int, m course.Module) string {
	var b strings.Builder
	b.WriteString(`<div style="margin-bottom: 30px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #4f46e5;">Módulo %d: %s</h2>`, idx+1, html.EscapeString(m.Title))
	fmt.Fprintf(&b, `<img src="%s" alt="%s" style="width: 100%%; max-width: %dpx; border-radius: 8px; margin: 15px 0;" />`,
		m.ImageURL(idx, imageWidth, imageHeight), html.EscapeString(m.Title), imageWidth)
	fmt.Fprintf(&b, `<div>%s</div>`, markup.Render(m.Content))
	b.WriteString(`<h3>Puntos Clave:</h3><ul>`)
	for _, p := range m.KeyPoints {
		fmt.Fprintf(&b, `<li>%s</li>`, html.EscapeString(p))
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}

func textBlock(text string) Block {
	return Block{Content: Library{Library: textLibrary, Params: TextParams{Text: text}}}
}

// marshal writes compact JSON without escaping the HTML inside text params.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
