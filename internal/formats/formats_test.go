package formats

import (
	"errors"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Intro a Python 3!":    "introapython3",
		"Módulo Único":         "mdulonico",
		"  ":                   "curso",
		"¿Qué?":                "qu",
		"ALREADY-clean_slug42": "alreadycleanslug42",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDescriptorFilename(t *testing.T) {
	d := Descriptor{Prefix: "SCORM_", Extension: ".zip"}
	if got := d.Filename("Intro a Python 3!"); got != "SCORM_introapython3.zip" {
		t.Fatalf("filename = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"MD": Markdown, " scorm ": SCORM, "pdf": Print, "h5p": H5P} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("docx"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
}
