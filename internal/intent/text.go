package intent

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state, so each call builds its own instead of sharing one
// across goroutines.

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// capitalize title-cases the first character and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und).String(s[:size]) + lower(s[size:])
}
