// Package token turns raw HIT input into a sequence of located tokens.
//
// The terminals recognized here follow the HIT context free grammar:
//
//	LEFT_BRACKET  = "["
//	RIGHT_BRACKET = "]"
//	EQUALS        = "="
//	PATH          = [a-zA-Z0-9_./:<>+\-]+
//	NUMBER        = [+-]?[0-9]*(\.[0-9]*)?([eE][+-]?[0-9]+)?
//	BOOL          = true|yes|on|false|no|off (any case)
//	STRING        = quoted ('...' or "...") or unquoted value body
//	COMMENT       = '#' to end of line
//
// Whitespace is structurally significant only in that it terminates
// adjacent tokens. Comments are retained as tokens so a parsed tree can
// be rendered back to equivalent text.
package token
