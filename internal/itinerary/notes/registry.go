package notes

import (
	"strings"

	"github.com/m04kA/SMC-SessionService/internal/domain"
)

var codecs = func() map[domain.Mode]*Codec {
	out := make(map[domain.Mode]*Codec, len(layouts))
	for _, l := range layouts {
		out[l.mode] = &Codec{layout: l}
	}
	return out
}()

// ForMode returns the codec of mode
func ForMode(mode domain.Mode) (*Codec, bool) {
	c, ok := codecs[mode]
	return c, ok
}

// Detect returns the codec whose header appears first in text
func Detect(text string) (*Codec, bool) {
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		for _, l := range layouts {
			if trimmed == l.header {
				return codecs[l.mode], true
			}
		}
	}
	return nil, false
}

// ExtractAdditionalNotes returns the freeform part of text without knowing
// the mode: everything before the first separator or known header
func ExtractAdditionalNotes(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == Separator || isHeader(trimmed) {
			return strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
	}
	return text
}

func isHeader(s string) bool {
	for _, l := range layouts {
		if s == l.header {
			return true
		}
	}
	return false
}
