// Package markup renders the lightweight markup used in module content.
//
// Exactly three rules are applied, in order:
//
//	**x**          -> <strong>x</strong>
//	"\n- item"     -> <br/>• item
//	"\n\n"         -> <br/><br/>
//
// Anything else, HTML included, passes through untouched. Content comes from
// the course generator, not from end users, so no sanitising happens here.
package markup

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletRe = regexp.MustCompile(`\n- (.*)`)
)

// Render returns the HTML fragment embedded in exported packages.
func Render(text string) string {
	out := boldRe.ReplaceAllString(text, "<strong>${1}</strong>")
	out = bulletRe.ReplaceAllString(out, "<br/>• ${1}")
	return strings.ReplaceAll(out, "\n\n", "<br/><br/>")
}

// HTML is Render typed for html/template views.
func HTML(text string) template.HTML {
	return template.HTML(Render(text))
}
