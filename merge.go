package hit

import (
	"github.com/hit-format/go-hit/debug"
	"github.com/hit-format/go-hit/tree"
)

// Merge merges the tree under from into the tree under into, mutating
// into in place. A field present at the same full path in both trees
// takes from's value and kind; sections present in both are merged
// recursively; nodes only in from are deep-copied and appended after
// into's existing children. from is never mutated, and clones keep
// their original tokens so line numbers still refer to from's input.
//
// Nodes already present in into keep their relative order. Merge
// expects already-exploded trees; merging trees whose field names still
// contain path separators resolves those names literally.
func Merge(from, into *tree.Node) {
	if debug.Merge() {
		debug.Logf("merge %q into %q\n", from.FullPath(), into.FullPath())
	}
	for _, fc := range from.Children(tree.All) {
		switch fc.Type() {
		case tree.SectionType:
			if c := childNamed(into, tree.SectionType, fc.Path()); c != nil {
				Merge(fc, c)
				continue
			}
			into.AddChild(fc.Clone())

		case tree.FieldType:
			if c := childNamed(into, tree.FieldType, fc.Path()); c != nil {
				if debug.Merge() {
					debug.Logf("merge overwrite %q = %q\n", c.FullPath(), fc.Val())
				}
				c.SetVal(fc.Val(), fc.Kind())
				continue
			}
			into.AddChild(fc.Clone())

		default:
			// comments carry no address; they travel only inside
			// cloned subtrees
		}
	}
}

func childNamed(n *tree.Node, t tree.Type, name string) *tree.Node {
	for _, c := range n.Children(t) {
		if c.Path() == name {
			return c
		}
	}
	return nil
}
