package dn

import "strings"

// escapeSet lists the bytes that carry syntactic meaning inside a DN and
// must be prefixed with a backslash when they appear in a value.
const escapeSet = `,=+<>#;\"`

// needsEscape reports whether c is a member of the escape set.
func needsEscape(c byte) bool {
	return strings.IndexByte(escapeSet, c) >= 0
}

// NeedsEscaping reports whether Escape would change s.
func NeedsEscaping(s string) bool {
	for i := 0; i < len(s); i++ {
		if needsEscape(s[i]) {
			return true
		}
	}
	return false
}

// Escape escapes s for use as a DN attribute type or value by prefixing
// every special character with a backslash.
//
// Example:
//
//	Escape("Smith, John") -> "Smith\, John"
func Escape(s string) string {
	if !NeedsEscaping(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsEscape(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
