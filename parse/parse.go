package parse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hit-format/go-hit/token"
	"github.com/hit-format/go-hit/tree"
)

// Parse parses a HIT input and returns the root of its syntax tree.
// label names the input in error messages (a filename, typically) and
// can be any string; the core never touches the filesystem.
func Parse(label string, data []byte) (*tree.Node, error) {
	toks, err := token.Tokenize(data)
	if err != nil {
		line := 0
		var scanErr *token.ScanError
		if errors.As(err, &scanErr) {
			line = scanErr.Pos.Line() + 1
		}
		return nil, newError(label, line, "%w: %v", ErrParse, err)
	}
	root := tree.NewRoot()
	i := 0
	if err := body(label, toks, root, &i); err != nil {
		return nil, err
	}
	if i < len(toks) {
		// body stops without consuming only at a section terminator
		return nil, newError(label, toks[i].Line(), "%w: unmatched section close", ErrParse)
	}
	return root, nil
}

// Check parses the input for errors and discards the tree.
func Check(label string, data []byte) error {
	_, err := Parse(label, data)
	return err
}

// body parses zero or more fields, sections and comments into parent.
// It returns without consuming when the next tokens form a section
// terminator, leaving the terminator for the enclosing section call.
func body(label string, toks []token.Token, parent *tree.Node, pi *int) error {
	for *pi < len(toks) {
		t := &toks[*pi]
		switch t.Type {
		case token.TComment, token.TInlineComment:
			c := tree.NewComment(string(t.Bytes), t.Type == token.TInlineComment)
			c.SetTokens(toks[*pi : *pi+1])
			parent.AddChild(c)
			*pi++

		case token.TPath:
			if err := field(label, toks, parent, pi); err != nil {
				return err
			}

		case token.TLeftBracket:
			if terminatorLen(toks, *pi) > 0 {
				return nil
			}
			if err := section(label, toks, parent, pi); err != nil {
				return err
			}

		default:
			return newError(label, t.Line(), "%w: unexpected %q", ErrParse, t.String())
		}
	}
	return nil
}

// terminatorLen returns the token length of a section terminator
// ("[../]" or "[]") starting at i, or 0 if the tokens there are not a
// terminator.
func terminatorLen(toks []token.Token, i int) int {
	if toks[i].Type != token.TLeftBracket || i+1 >= len(toks) {
		return 0
	}
	if toks[i+1].Type == token.TRightBracket {
		return 2
	}
	if toks[i+1].Type == token.TPath && toks[i+1].String() == tree.SectionClose &&
		i+2 < len(toks) && toks[i+2].Type == token.TRightBracket {
		return 3
	}
	return 0
}

func section(label string, toks []token.Token, parent *tree.Node, pi *int) error {
	start := *pi
	open := &toks[*pi]
	*pi++
	if *pi >= len(toks) || toks[*pi].Type != token.TPath {
		return newError(label, open.Line(), "%w: expected section path", ErrParse)
	}
	header := &toks[*pi]
	*pi++
	if *pi >= len(toks) || toks[*pi].Type != token.TRightBracket {
		return newError(label, header.Line(), "%w: expected ']' after section path %q", ErrParse, header.String())
	}
	*pi++

	sec := tree.NewSection(header.String())
	sec.SetTokens(toks[start:*pi])
	parent.AddChild(sec)

	if err := body(label, toks, sec, pi); err != nil {
		return err
	}
	tn := 0
	if *pi < len(toks) {
		tn = terminatorLen(toks, *pi)
	}
	if tn == 0 {
		return newError(label, open.Line(), "%w: missing closing bracket for section %q", ErrParse, header.String())
	}
	sec.SetTokens(toks[start : *pi+tn])
	*pi += tn
	return nil
}

func field(label string, toks []token.Token, parent *tree.Node, pi *int) error {
	start := *pi
	name := &toks[*pi]
	*pi++
	if *pi >= len(toks) || toks[*pi].Type != token.TEquals {
		return newError(label, name.Line(), "%w: expected '=' after %q", ErrParse, name.String())
	}
	*pi++
	if *pi >= len(toks) {
		return newError(label, name.Line(), "%w: expected value for field %q", ErrParse, name.String())
	}
	val := &toks[*pi]

	var kind tree.Kind
	switch val.Type {
	case token.TBool:
		kind = tree.Bool
	case token.TNumber:
		kind = numberKind(val.String())
	case token.TString:
		kind = tree.String
	default:
		return newError(label, val.Line(), "%w: expected value for field %q, got %q", ErrParse, name.String(), val.String())
	}
	*pi++

	f := tree.NewField(name.String(), kind, val.String())
	f.SetTokens(toks[start:*pi])
	parent.AddChild(f)
	return nil
}

// numberKind selects Int when the literal has no fractional or
// exponent part and fits an int64, Float otherwise.
func numberKind(lit string) tree.Kind {
	if strings.ContainsAny(lit, ".eE") {
		return tree.Float
	}
	if _, err := strconv.ParseInt(lit, 10, 64); err != nil {
		return tree.Float
	}
	return tree.Int
}
