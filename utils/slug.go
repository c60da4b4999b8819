package utils

import (
	"strings"
	"unicode"
)

// Slugify mengubah nama menjadi slug URL (huruf kecil, dash sebagai pemisah)
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
