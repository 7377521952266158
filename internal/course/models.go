package course

import (
	"fmt"
	"net/url"
	"strconv"
)

// Module is one lesson of a generated course.
type Module struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`      // lightweight markup, see internal/markup
	ImageKeyword string   `json:"imageKeyword"` // single English word, seeds the placeholder image
	KeyPoints    []string `json:"keyPoints"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // zero-based index into Options
}

// Course is produced once by the content generator and is read-only afterwards.
type Course struct {
	Title        string         `json:"title"`
	Introduction string         `json:"introduction"`
	Modules      []Module       `json:"modules"`
	Quiz         []QuizQuestion `json:"quiz"`
}

// ImageSeed combines the keyword with the module position so two modules
// sharing a keyword still get different images.
func (m Module) ImageSeed(idx int) string {
	return m.ImageKeyword + strconv.Itoa(idx)
}

// ImageURL returns the placeholder image for the module at idx.
func (m Module) ImageURL(idx, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", url.PathEscape(m.ImageSeed(idx)), width, height)
}

// CorrectAnswers lists quiz answer indices in quiz order.
func (c Course) CorrectAnswers() []int {
	out := make([]int, len(c.Quiz))
	for i, q := range c.Quiz {
		out[i] = q.CorrectAnswer
	}
	return out
}

// TabIDs lists the navigation tabs of a course view: one per module, then the quiz.
func (c Course) TabIDs() []string {
	out := make([]string, 0, len(c.Modules)+1)
	for i := range c.Modules {
		out = append(out, ModuleTab(i))
	}
	return append(out, QuizTab)
}

const QuizTab = "quiz"

func ModuleTab(idx int) string { return "module-" + strconv.Itoa(idx) }
