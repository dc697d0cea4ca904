package normalize

import "strings"

// Normalize lowercases text and reduces it to word characters, Spanish
// accented vowels and single spaces. Any other rune becomes a space and
// whitespace runs are collapsed. The function is total and idempotent:
// normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// isWordRune reports whether a rune survives normalization. The set is
// ASCII word characters plus the accented vowels and ñ/ü used in Spanish.
func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ñ', 'ü':
		return true
	}
	return false
}
