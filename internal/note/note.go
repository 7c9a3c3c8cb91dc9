// Package note defines the note record shared by the store, the card
// controllers, and the attachment handler.
package note

import (
	"html"
	"strings"

	"github.com/araddon/dateparse"
)

// DefaultCategory is the sentinel category key used when a note's
// stored category does not resolve in the registry.
const DefaultCategory = "none"

// Note is a single user-authored record. Attachments carry only the
// filenames; the files themselves live under the image directories.
type Note struct {
	ID          int64
	Category    string
	Title       string
	Body        string
	Attachments []string
	Created     string
}

// DecodeBody returns the body with HTML entities unescaped for
// display. Legacy rows written by older exporters stored escaped text;
// freshly typed bodies pass through unchanged.
func (n Note) DecodeBody() string {
	return html.UnescapeString(n.Body)
}

// DisplayDate renders the stored creation date for card headers. The
// column is free-form DATE text, so parsing is best effort.
func (n Note) DisplayDate() string {
	if n.Created == "" {
		return ""
	}
	t, err := dateparse.ParseAny(n.Created)
	if err != nil {
		return n.Created
	}
	return t.Format("2006-01-02")
}

// JoinAttachments serializes an attachment list for the imagens
// column. An empty list maps to the empty string.
func JoinAttachments(files []string) string {
	return strings.Join(files, ",")
}

// SplitAttachments parses the comma-joined imagens column, trimming
// whitespace and dropping empty entries.
func SplitAttachments(column string) []string {
	if strings.TrimSpace(column) == "" {
		return nil
	}
	parts := strings.Split(column, ",")
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files
}
