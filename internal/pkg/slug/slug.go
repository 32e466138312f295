// Package slug derives URL-safe identifiers from human titles.
package slug

import "strings"

// Make lowercases text, collapses every run of characters outside [a-z0-9]
// into a single hyphen and strips leading/trailing hyphens.
func Make(text string) string {
	s := strings.ToLower(text)
	var sb strings.Builder
	lastHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(sb.String(), "-")
}

// Normalize lowercases and trims an explicitly supplied slug. Used by the
// neighborhood save path only; blog posts store explicit slugs verbatim.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
