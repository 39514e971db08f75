// Package textx provides text normalization helpers for user-entered values
// before they are embedded into request payloads.
package textx

import "strings"

// Clean returns s with all ASCII control characters (0x00–0x1F, 0x7F) and the
// characters '<' and '>' removed, with leading and trailing whitespace
// trimmed. Clean is pure and total; cleaning an already-clean string returns
// it unchanged.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f || r == '<' || r == '>' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
