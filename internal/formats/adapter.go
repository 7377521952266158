package formats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
)

// Format names one export action.
type Format string

const (
	Print    Format = "print"
	Markdown Format = "markdown"
	SCORM    Format = "scorm"
	H5P      Format = "h5p"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrNoArchiver    = errors.New("no archiver configured")
)

// Descriptor says how an artifact of a format is named and served.
type Descriptor struct {
	Format      Format
	Prefix      string // filename prefix, "SCORM_", "H5P_" or ""
	Extension   string
	ContentType string
	Packaged    bool // built through an archive.Archiver
	Inline      bool // shown by the browser instead of saved
}

// Options carries everything an adapter needs besides the course itself.
type Options struct {
	Resources []course.Resource
	Archiver  archive.Archiver
	Language  string
	Now       func() time.Time
}

func (o Options) Time() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) Lang() string {
	if o.Language == "" {
		return "es"
	}
	return o.Language
}

// Adapter builds one export format from a course.
type Adapter interface {
	Descriptor() Descriptor
	Export(ctx context.Context, c course.Course, opts Options) ([]byte, error)
}

// Registry of adapters by format. Subpackages register from init().
var registry = map[Format]Adapter{}

func Register(a Adapter) { registry[a.Descriptor().Format] = a }

func Lookup(f Format) (Adapter, bool) { a, ok := registry[f]; return a, ok }

// Registered lists the available formats in a stable order.
func Registered() []Format {
	out := make([]Format, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var aliases = map[string]Format{
	"print": Print, "pdf": Print,
	"markdown": Markdown, "md": Markdown,
	"scorm": SCORM, "zip": SCORM,
	"h5p": H5P,
}

// ParseFormat accepts a format name or a common alias ("md", "pdf").
func ParseFormat(s string) (Format, error) {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
