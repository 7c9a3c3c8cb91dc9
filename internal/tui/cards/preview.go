package cards

import (
	"crypto/sha256"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// previewKey fingerprints a card body so edits invalidate the cached
// render without flushing other cards.
func previewKey(id int64, body string) string {
	sum := sha256.Sum256([]byte(body))
	return fmt.Sprintf("%d:%x", id, sum[:8])
}

func renderPreview(body string, width int) string {
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return body
	}

	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return out
}
