package hit

import (
	"strings"

	"github.com/hit-format/go-hit/debug"
	"github.com/hit-format/go-hit/tree"
)

// Explode rewrites fields and section headers whose paths contain
// separators into the equivalent nested-section structure, mutating the
// tree in place: "foo/bar = 42" becomes a section "foo" holding field
// "bar". Existing same-named sections are reused; new sections are
// created at the position of the node they replace. Run Explode before
// relying on Find to resolve slash-containing names structurally;
// Merge expects exploded trees.
//
// A name containing a ".." segment is never exploded: the closing-path
// sentinel is a terminator marker, not content, so such names are kept
// as literal, un-split paths.
func Explode(n *tree.Node) {
	for _, c := range n.Children(tree.All) {
		switch c.Type() {
		case tree.SectionType:
			head, rest, ok := splitHead(c.Path())
			if !ok {
				Explode(c)
				continue
			}
			if debug.Explode() {
				debug.Logf("explode section %q\n", c.FullPath())
			}
			idx := n.ChildIndex(c)
			n.RemoveChild(c)
			sec := sectionAt(n, head, idx)
			inner := tree.NewSection(rest)
			inner.SetTokens(c.Tokens())
			for _, cc := range c.Children(tree.All) {
				c.RemoveChild(cc)
				inner.AddChild(cc)
			}
			sec.AddChild(inner)
			Explode(sec)

		case tree.FieldType:
			head, rest, ok := splitHead(c.Path())
			if !ok {
				continue
			}
			if debug.Explode() {
				debug.Logf("explode field %q\n", c.FullPath())
			}
			idx := n.ChildIndex(c)
			n.RemoveChild(c)
			sec := sectionAt(n, head, idx)
			f := tree.NewField(rest, c.Kind(), c.Val())
			f.SetTokens(c.Tokens())
			sec.AddChild(f)
			Explode(sec)
		}
	}
}

// splitHead splits a multi-segment path into its first segment and the
// remainder. Paths with no separator, or with a ".." segment anywhere,
// are not split.
func splitHead(path string) (head, rest string, ok bool) {
	p := tree.PathNorm(path)
	i := strings.IndexByte(p, '/')
	if i < 0 {
		return "", "", false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", "", false
		}
	}
	return p[:i], p[i+1:], true
}

// sectionAt returns the existing section child named name, or a new one
// inserted at index idx.
func sectionAt(n *tree.Node, name string, idx int) *tree.Node {
	if c := childNamed(n, tree.SectionType, name); c != nil {
		return c
	}
	sec := tree.NewSection(name)
	n.InsertChild(idx, sec)
	return sec
}
