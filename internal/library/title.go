package library

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeTitle trims surrounding whitespace and converts to NFC so that
// composed and decomposed spellings of the same title compare equal.
func normalizeTitle(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
