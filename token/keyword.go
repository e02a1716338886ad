package token

import "strings"

// The HIT boolean keyword set. Matching is case-insensitive both during
// lexing and during value coercion.
var boolKeywords = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"false": false,
	"no":    false,
	"off":   false,
}

// BoolValue reports whether s is a HIT boolean keyword and, if so, its
// value.
func BoolValue(s string) (val, ok bool) {
	val, ok = boolKeywords[strings.ToLower(s)]
	return val, ok
}
