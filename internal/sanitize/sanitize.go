// Package sanitize derives filesystem-safe slugs from arbitrary text.
package sanitize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLen = 15

var stripMarks = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
)

// Sanitize turns text into a short slug usable inside filenames and
// category keys. Accented characters are folded to their ASCII base,
// anything outside [A-Za-z0-9] becomes an underscore, and the result
// is capped at 15 characters.
func Sanitize(text string) string {
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		folded = text
	}

	out := make([]byte, 0, len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, byte(r))
		case r > unicode.MaxASCII:
			// Non-ASCII leftovers after decomposition are dropped,
			// matching the ASCII-ignore fold the filenames were born with.
			continue
		default:
			out = append(out, '_')
		}
	}

	if len(out) > maxSlugLen {
		out = out[:maxSlugLen]
	}
	return string(out)
}
