package scorm

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/grading"
	"github.com/VictoriaCloud360/CursoAPP/internal/markup"
)

//go:embed player.html.tmpl
var playerSource string

var playerTmpl = template.Must(template.New("player").Parse(playerSource))

// Images in the player sidebar are 800x600.
const (
	imageWidth  = 800
	imageHeight = 600
)

type playerModule struct {
	ID        string
	Number    int
	Title     string
	Content   template.HTML
	KeyPoints []string
	Keyword   string
	ImageURL  string
}

type playerQuestion struct {
	Name     string // radio group name, q-<i>
	Number   int
	Question string
	Options  []string
}

type playerFeedback struct {
	All, Some, None grading.Feedback
}

type playerData struct {
	Lang           string
	Title          string
	Introduction   string
	Modules        []playerModule
	Quiz           []playerQuestion
	Resources      []course.Resource
	CorrectAnswers []int
	Total          int
	PassingScore   int
	Passed         string
	Completed      string
	Feedback       playerFeedback
}

func newPlayerData(c course.Course, resources []course.Resource, lang string) playerData {
	d := playerData{
		Lang:           lang,
		Title:          c.Title,
		Introduction:   c.Introduction,
		Resources:      resources,
		CorrectAnswers: c.CorrectAnswers(),
		Total:          len(c.Quiz),
		PassingScore:   grading.PassingScore(len(c.Quiz)),
		Passed:         grading.StatusPassed,
		Completed:      grading.StatusCompleted,
		Feedback: playerFeedback{
			All:  grading.FeedbackFor(grading.TierAll),
			Some: grading.FeedbackFor(grading.TierSome),
			None: grading.FeedbackFor(grading.TierNone),
		},
	}
	for i, m := range c.Modules {
		d.Modules = append(d.Modules, playerModule{
			ID:        course.ModuleTab(i),
			Number:    i + 1,
			Title:     m.Title,
			Content:   markup.HTML(m.Content),
			KeyPoints: m.KeyPoints,
			Keyword:   m.ImageKeyword,
			ImageURL:  m.ImageURL(i, imageWidth, imageHeight),
		})
	}
	for i, q := range c.Quiz {
		d.Quiz = append(d.Quiz, playerQuestion{
			Name:     fmt.Sprintf("q-%d", i),
			Number:   i + 1,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return d
}

// BuildPlayer renders the self-contained index.html launched by the LMS.
func BuildPlayer(c course.Course, resources []course.Resource, lang string) ([]byte, error) {
	var buf bytes.Buffer
	if err := playerTmpl.Execute(&buf, newPlayerData(c, resources, lang)); err != nil {
		return nil, fmt.Errorf("render player: %w", err)
	}
	return buf.Bytes(), nil
}
