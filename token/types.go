package token

import "fmt"

type Type int

const (
	TLeftBracket Type = iota
	TRightBracket
	TPath
	TEquals
	TNumber
	TBool
	TString
	TComment
	TInlineComment
)

func (t Type) String() string {
	return map[Type]string{
		TLeftBracket:   "TLeftBracket",
		TRightBracket:  "TRightBracket",
		TPath:          "TPath",
		TEquals:        "TEquals",
		TNumber:        "TNumber",
		TBool:          "TBool",
		TString:        "TString",
		TComment:       "TComment",
		TInlineComment: "TInlineComment",
	}[t]
}

// Token is a classified lexical unit. Bytes holds the raw input text of
// the token verbatim; Pos locates its first byte in the source document.
// Tokens are immutable once produced and are retained by the tree nodes
// built from them.
type Token struct {
	Type  Type
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// Line returns the 1-based source line of the token.
func (t *Token) Line() int {
	return t.Pos.Line() + 1
}
