package utils

import (
	"strings"
	"unicode"
)

// UsernameToDisplayName turns a login name like "devleta.brkic" into
// "Devleta Brkic" for matching against roster person names.
func UsernameToDisplayName(username string) string {
	parts := strings.Split(strings.TrimSpace(username), ".")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

// Slugify turns a display name like "Devleta Brkić" into "devleta.brkic"
// so it can be matched against login usernames.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('.')
		default:
			if repl, ok := latinFold[r]; ok {
				b.WriteRune(repl)
			}
			// other characters are dropped
		}
	}
	return b.String()
}

// EmailLocalPart returns the part of an email address before the '@'.
func EmailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

// latinFold maps the diacritics that appear in local staff names onto
// their ASCII counterparts.
var latinFold = map[rune]rune{
	'č': 'c', 'ć': 'c', 'š': 's', 'ž': 'z', 'đ': 'd',
	'á': 'a', 'à': 'a', 'ä': 'a', 'é': 'e', 'è': 'e',
	'í': 'i', 'ó': 'o', 'ö': 'o', 'ú': 'u', 'ü': 'u',
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
