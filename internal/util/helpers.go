package util

import (
	"unicode/utf8"
)

// TruncateRunes — safe truncation by runes, not bytes. Turkish text makes
// byte slicing a liability.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n])
}
