package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var notesPolicy = bluemonday.StrictPolicy()

// SanitizeNotes strips all HTML (tags, scripts, attributes) from free-text
// answer notes before they are stored.
func SanitizeNotes(notes string) string {
	clean := notesPolicy.Sanitize(notes)
	// bluemonday entity-escapes the survivors; stored notes are plain text.
	return strings.TrimSpace(html.UnescapeString(clean))
}
