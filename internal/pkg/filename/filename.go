// Package filename sanitizes client-supplied file names before they touch
// the filesystem.
package filename

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and strips the combining marks,
// so "résumé" becomes "resume" before the ASCII filter runs.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Sanitize strips path components and unsafe characters from a
// client-supplied file name. Accented Latin characters are transliterated
// to their ASCII base; anything else outside [A-Za-z0-9._-] is dropped.
// The result is safe to join under the upload directory; an empty result
// means the name was unusable.
func Sanitize(name string) string {
	// Handle separators from either platform before taking the base name.
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	if folded, _, err := transform.String(asciiFold, name); err == nil {
		name = folded
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._-")
	if cleaned == "" {
		return ""
	}
	return cleaned
}

// Ext returns the lower-cased extension of name without the leading dot,
// empty when the name has none.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
