package formats

import "strings"

// fallbackSlug names files whose title has no ASCII letters or digits.
const fallbackSlug = "curso"

// Slug lowercases title and drops every character outside [a-z0-9].
func Slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// Filename is the download name for a course exported in d's format.
func (d Descriptor) Filename(title string) string {
	return d.Prefix + Slug(title) + d.Extension
}
