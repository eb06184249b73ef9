// Package title splits raw stream titles into a display name and a
// description.
package title

import "strings"

const separator = " - "

// Parse returns the short name and description of a raw stream title.
//
// Titles containing " - " are split on the first occurrence. Otherwise the
// first run of decorative runes (anything that is not ASCII alphanumeric or
// whitespace, usually an emoji) ends the name. Titles without either return
// the whole title as the name and an empty description.
func Parse(raw string) (name, description string) {
	if pos := strings.Index(raw, separator); pos >= 0 {
		return strings.TrimSpace(raw[:pos]), strings.TrimSpace(raw[pos+len(separator):])
	}

	runes := []rune(raw)
	markerEnd := 0
	foundMarker := false
	for i, r := range runes {
		if isPlain(r) {
			if foundMarker {
				markerEnd = i
				break
			}
			continue
		}
		foundMarker = true
		markerEnd = i + 1
	}

	if foundMarker && markerEnd > 0 && markerEnd < len(runes) {
		return strings.TrimSpace(string(runes[:markerEnd])), strings.TrimSpace(string(runes[markerEnd:]))
	}
	return raw, ""
}

func isPlain(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f':
		return true
	}
	return false
}
