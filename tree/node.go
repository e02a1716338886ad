package tree

import (
	"github.com/hit-format/go-hit/token"
)

// Node is a single element of a parsed HIT tree. The zero value is not
// useful; use the New* constructors.
type Node struct {
	typ    Type
	path   string // section header path or field name
	kind   Kind
	val    string // field value, verbatim as written
	text   string // comment text, including the leading '#'
	inline bool

	parent   *Node
	children []*Node
	toks     []token.Token
}

func NewRoot() *Node {
	return &Node{typ: RootType}
}

func NewSection(path string) *Node {
	return &Node{typ: SectionType, path: path}
}

func NewComment(text string, inline bool) *Node {
	return &Node{typ: CommentType, text: text, inline: inline}
}

func NewField(name string, kind Kind, val string) *Node {
	return &Node{typ: FieldType, path: name, kind: kind, val: val}
}

func (n *Node) Type() Type {
	return n.typ
}

// Path returns this node's local contribution to its full path: the
// section header path, the field name, or "" for root and comments.
func (n *Node) Path() string {
	return n.path
}

// FullPath returns the normalized slash-joined path from the tree root
// to this node.
func (n *Node) FullPath() string {
	if n.parent == nil {
		return PathNorm(n.path)
	}
	return PathJoin([]string{n.parent.FullPath(), n.path})
}

// Tokens returns the raw lexer tokens this node was built from, if it
// came from parsed input.
func (n *Node) Tokens() []token.Token {
	return n.toks
}

func (n *Node) SetTokens(toks []token.Token) {
	n.toks = toks
}

// Line returns the 1-based source line this node started on, or 0 for
// nodes not built from parsed input.
func (n *Node) Line() int {
	if len(n.toks) == 0 {
		return 0
	}
	return n.toks[0].Line()
}

// AddChild appends child to this node's ordered children, taking
// ownership. A child belongs to exactly one parent.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// InsertChild inserts child at index i among this node's children.
func (n *Node) InsertChild(i int, child *Node) {
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// RemoveChild detaches child from this node. It reports whether child
// was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// ChildIndex returns the index of child among this node's children, or
// -1 if child is not a child of n.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Children returns this node's children of type t, in order. All
// returns every child.
func (n *Node) Children(t Type) []*Node {
	if t == All {
		return append([]*Node(nil), n.children...)
	}
	var res []*Node
	for _, c := range n.children {
		if c.typ == t {
			res = append(res, c)
		}
	}
	return res
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Clone returns a deep copy of this node and its subtree. The clone has
// no parent; tokens are shared with the original (they are immutable)
// so line provenance survives cloning.
func (n *Node) Clone() *Node {
	res := &Node{
		typ:    n.typ,
		path:   n.path,
		kind:   n.kind,
		val:    n.val,
		text:   n.text,
		inline: n.inline,
		toks:   n.toks,
	}
	res.children = make([]*Node, len(n.children))
	for i, c := range n.children {
		cc := c.Clone()
		cc.parent = res
		res.children[i] = cc
	}
	return res
}

// WalkFunc is invoked once per matching node during a depth-first walk.
type WalkFunc func(n *Node) error

// Walk traverses the subtree rooted at this node depth-first, calling f
// for every node of type t (All matches every node). Nodes not of type
// t are still traversed.
func (n *Node) Walk(t Type, f WalkFunc) error {
	if t == All || n.typ == t {
		if err := f(n); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := c.Walk(t, f); err != nil {
			return err
		}
	}
	return nil
}
