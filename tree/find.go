package tree

// Find resolves a slash-delimited path relative to this node, matching
// successive path segments against child Path() values. The first child
// whose path matches a leading run of the remaining segments is
// descended into; if the descent fails, the scan continues with later
// siblings. Returns nil if the path does not resolve.
//
// Multi-segment child paths (a section header like "a/b", or a field
// named "a/b" in an un-exploded tree) match the corresponding run of
// lookup segments.
func (n *Node) Find(path string) *Node {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil
	}
	return n.findSegs(segs)
}

func (n *Node) findSegs(segs []string) *Node {
	if len(segs) == 0 {
		return n
	}
	for _, c := range n.children {
		if c.typ != SectionType && c.typ != FieldType {
			continue
		}
		cs := splitPath(c.path)
		if len(cs) == 0 || len(cs) > len(segs) {
			continue
		}
		if !segsEqual(cs, segs[:len(cs)]) {
			continue
		}
		if res := c.findSegs(segs[len(cs):]); res != nil {
			return res
		}
	}
	return nil
}

func segsEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
