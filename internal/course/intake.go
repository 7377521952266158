package course

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Errors returned while pulling JSON out of generator text.
var (
	ErrNoJSON        = errors.New("no valid JSON found in response")
	ErrFencedJSON    = errors.New("could not parse fenced JSON block")
	ErrMalformedJSON = errors.New("malformed JSON response")
)

var fencedJSON = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

// ExtractJSON pulls a JSON document out of free-form generator output. It
// tries the text as-is, then a ```json fenced block, then the outermost
// brace/bracket span.
func ExtractJSON(text []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(text)
	if json.Valid(trimmed) {
		return trimmed, nil
	}
	if m := fencedJSON.FindSubmatch(text); m != nil && len(m[1]) > 0 {
		if json.Valid(m[1]) {
			return m[1], nil
		}
		return nil, ErrFencedJSON
	}
	start := bytes.IndexAny(text, "{[")
	end := max(bytes.LastIndexByte(text, '}'), bytes.LastIndexByte(text, ']'))
	if start != -1 && end > start {
		if candidate := text[start : end+1]; json.Valid(candidate) {
			return candidate, nil
		}
		return nil, ErrMalformedJSON
	}
	return nil, ErrNoJSON
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(courseSchema))
	})
	return schema, schemaErr
}

// Decode turns raw generator output into a Course. The payload must match the
// generator contract (3-4 modules, 3 questions of 4 options) and pass Validate.
func Decode(raw []byte) (Course, error) {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return Course{}, fmt.Errorf("%w: %w", ErrInvalidCourse, err)
	}
	s, err := compiledSchema()
	if err != nil {
		return Course{}, fmt.Errorf("course schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return Course{}, fmt.Errorf("%w: %w", ErrInvalidCourse, err)
	}
	if !res.Valid() {
		ve := &ValidationError{}
		for _, e := range res.Errors() {
			ve.Problems = append(ve.Problems, e.String())
		}
		return Course{}, ve
	}
	var c Course
	if err := json.Unmarshal(doc, &c); err != nil {
		return Course{}, fmt.Errorf("%w: %w", ErrInvalidCourse, err)
	}
	if err := c.Validate(); err != nil {
		return Course{}, err
	}
	return c, nil
}
