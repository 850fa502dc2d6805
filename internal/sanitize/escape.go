package sanitize

import (
	"strings"
	"unicode"

	"robogen/internal/errors"
)

// Robot Framework escaping.
//
// Generated artifacts use the space-separated plain text format, where a
// run of two or more spaces separates cells and a handful of characters
// carry structural meaning inside a cell:
//
//	\   escape character
//	#   starts a comment
//	$@%&  start a variable when followed by {
//	=   separates named arguments
//	|   cell separator in the pipe-separated format
//
// Escape rewrites a value so it survives as a single literal cell;
// Unescape reverses the rewrite exactly (round-trip law).

// Escape escapes every Robot-significant character in s. Control
// characters (including tab, newline, carriage return) cannot be
// represented as a literal cell and cause a hard failure.
func Escape(field, s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) + 8)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsControl(r) {
			return "", errors.ErrUnsafeCredentialCharacter(field, r)
		}

		switch r {
		case '\\', '#', '=', '|':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '$', '@', '%', '&':
			// Only a sigil directly before '{' opens a variable.
			if i+1 < len(runes) && runes[i+1] == '{' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		case ' ':
			// The second and later spaces of a run would be read as a
			// cell separator.
			if i > 0 && runes[i-1] == ' ' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

// Unescape reverses Escape. Input not produced by Escape is still handled:
// a backslash followed by any character yields that character, and a
// trailing lone backslash is preserved.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
			b.WriteRune(runes[i])

			continue
		}
		b.WriteRune(runes[i])
	}

	return b.String()
}
