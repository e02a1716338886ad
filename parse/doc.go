// Package parse builds HIT syntax trees from token sequences.
//
// The grammar, by recursive descent:
//
//	document => (field | section | comment)*
//	section  => '[' PATH ']' document '[' CLOSING_PATH ']'
//	field    => PATH '=' value
//
// where CLOSING_PATH is "../" or empty. Parsing is a pure function of
// (label, input): it either returns a Root node or fails with an
// *Error; no partial tree is ever returned.
package parse
