package course

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCourse = errors.New("invalid course")

// ValidationError collects every problem found in a course payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid course: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidCourse }

// Validate checks the invariants every exporter relies on: a title, at least
// one module and one question, and in-range answer indices.
func (c Course) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Title) == "" {
		problems = append(problems, "title is required")
	}
	if len(c.Modules) == 0 {
		problems = append(problems, "at least one module is required")
	}
	if len(c.Quiz) == 0 {
		problems = append(problems, "at least one quiz question is required")
	}
	for i, q := range c.Quiz {
		if len(q.Options) == 0 {
			problems = append(problems, fmt.Sprintf("quiz[%d]: options are required", i))
			continue
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			problems = append(problems, fmt.Sprintf("quiz[%d]: correctAnswer %d out of range [0,%d)", i, q.CorrectAnswer, len(q.Options)))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
