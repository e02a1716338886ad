package encode

import (
	"io"
	"strings"

	"github.com/hit-format/go-hit/token"
	"github.com/hit-format/go-hit/tree"
)

type EncState struct {
	depth  int
	indent int

	Color func(ColorAttr, string) string
}

// Encode writes the HIT text of the subtree rooted at node to w.
func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type() {
	case tree.RootType:
		return encodeChildren(node.Children(tree.All), w, es)
	default:
		return encodeChildren([]*tree.Node{node}, w, es)
	}
}

func encodeChildren(children []*tree.Node, w io.Writer, es *EncState) error {
	for i := 0; i < len(children); i++ {
		c := children[i]
		// an inline comment is rendered at the end of the line opened
		// by the node before it
		var trailing *tree.Node
		if c.Type() != tree.CommentType && i+1 < len(children) {
			if nx := children[i+1]; nx.Type() == tree.CommentType && nx.Inline() {
				trailing = nx
				i++
			}
		}
		if err := encodeNode(c, trailing, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(n, trailing *tree.Node, w io.Writer, es *EncState) error {
	switch n.Type() {
	case tree.SectionType:
		header := es.paint(BracketColor, "[") +
			es.paint(SectionColor, n.Path()) +
			es.paint(BracketColor, "]")
		children := n.Children(tree.All)
		// an inline comment opening the body sits on the header line
		var headTrailing *tree.Node
		if len(children) > 0 && children[0].Type() == tree.CommentType && children[0].Inline() {
			headTrailing = children[0]
			children = children[1:]
		}
		if err := writeLine(w, es, header, headTrailing); err != nil {
			return err
		}
		es.depth++
		if err := encodeChildren(children, w, es); err != nil {
			return err
		}
		es.depth--
		closing := es.paint(BracketColor, "["+tree.SectionClose+"]")
		// an inline comment following the section trails its close
		return writeLine(w, es, closing, trailing)

	case tree.FieldType:
		line := es.paint(FieldColor, n.Path()) + " = " +
			es.paint(ValueColor, fieldValue(n))
		return writeLine(w, es, line, trailing)

	case tree.CommentType:
		return writeLine(w, es, es.paint(CommentColor, n.Text()), nil)

	case tree.RootType:
		return encodeChildren(n.Children(tree.All), w, es)
	}
	return nil
}

// fieldValue returns the rendered value text: verbatim when it can be
// re-lexed as a single value token, single-quoted otherwise.
func fieldValue(n *tree.Node) string {
	val := n.Val()
	if len(val) > 0 && (val[0] == '\'' || val[0] == '"') {
		return val
	}
	if token.NeedsQuote(val) {
		return token.Quote(val)
	}
	return val
}

func writeLine(w io.Writer, es *EncState, content string, trailing *tree.Node) error {
	line := strings.Repeat(" ", es.indent*es.depth) + content
	if trailing != nil {
		line += " " + es.paint(CommentColor, trailing.Text())
	}
	_, err := w.Write([]byte(line + "\n"))
	return err
}

func (es *EncState) paint(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}
