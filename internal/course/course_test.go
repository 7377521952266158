package course_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/course/coursetest"
)

func TestValidate(t *testing.T) {
	if err := coursetest.Sample().Validate(); err != nil {
		t.Fatalf("sample should validate: %v", err)
	}

	bad := coursetest.Sample()
	bad.Title = "  "
	bad.Quiz[1].CorrectAnswer = 4
	err := bad.Validate()
	if !errors.Is(err, course.ErrInvalidCourse) {
		t.Fatalf("want ErrInvalidCourse, got %v", err)
	}
	var ve *course.ValidationError
	if !errors.As(err, &ve) || len(ve.Problems) != 2 {
		t.Fatalf("want 2 problems, got %+v", ve)
	}
	if !strings.Contains(err.Error(), "quiz[1]") {
		t.Fatalf("error should name the question: %v", err)
	}

	empty := course.Course{Title: "x"}
	if err := empty.Validate(); err == nil {
		t.Fatal("course without modules and quiz must fail")
	}
}

func TestImageSeedDistinctForRepeatedKeyword(t *testing.T) {
	c := coursetest.Sample()
	a, b := c.Modules[0].ImageSeed(0), c.Modules[1].ImageSeed(1)
	if a == b {
		t.Fatalf("seeds must differ, both %q", a)
	}
	if got := c.Modules[0].ImageURL(0, 800, 600); got != "https://picsum.photos/seed/code0/800/600" {
		t.Fatalf("image url = %q", got)
	}
}

func TestCorrectAnswersAndTabs(t *testing.T) {
	c := coursetest.Sample()
	got := c.CorrectAnswers()
	want := []int{1, 0, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("answers = %v, want %v", got, want)
		}
	}
	tabs := c.TabIDs()
	if len(tabs) != 4 || tabs[0] != "module-0" || tabs[3] != course.QuizTab {
		t.Fatalf("tabs = %v", tabs)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name, in, want string
		err            error
	}{
		{"plain", `{"a":1}`, `{"a":1}`, nil},
		{"fenced", "text\n```json\n[1,2]\n```\nmore", `[1,2]`, nil},
		{"fenced broken", "```json\n{oops\n```", "", course.ErrFencedJSON},
		{"embedded", `Sure! {"a":[1]} bye`, `{"a":[1]}`, nil},
		{"embedded broken", `x {"a": } y`, "", course.ErrMalformedJSON},
		{"none", "no json here", "", course.ErrNoJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := course.ExtractJSON([]byte(tc.in))
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("err = %v, want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	c, err := course.Decode([]byte(coursetest.SampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(c.Modules) != 3 || len(c.Quiz) != 3 || c.Quiz[2].CorrectAnswer != 3 {
		t.Fatalf("unexpected course: %+v", c)
	}

	_, err = course.Decode([]byte(`{"title":"x","introduction":"y","modules":[],"quiz":[]}`))
	var ve *course.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want schema ValidationError, got %v", err)
	}

	_, err = course.Decode([]byte("nothing"))
	if !errors.Is(err, course.ErrInvalidCourse) || !errors.Is(err, course.ErrNoJSON) {
		t.Fatalf("want wrapped ErrNoJSON, got %v", err)
	}
}
