package tree

import (
	"testing"
)

func demoTree() *Node {
	root := NewRoot()
	root.AddChild(NewField("top", Int, "1"))
	outer := NewSection("outer")
	outer.AddChild(NewField("a", Int, "2"))
	inner := NewSection("inner")
	inner.AddChild(NewField("b", Int, "3"))
	outer.AddChild(inner)
	root.AddChild(outer)
	root.AddChild(NewComment("# tail", false))
	return root
}

func TestFullPath(t *testing.T) {
	root := demoTree()
	paths := map[string]string{
		"top":           "top",
		"outer":         "outer",
		"outer/a":       "outer/a",
		"outer/inner":   "outer/inner",
		"outer/inner/b": "outer/inner/b",
	}
	for lookup, want := range paths {
		n := root.Find(lookup)
		if n == nil {
			t.Errorf("%q not found", lookup)
			continue
		}
		if n.FullPath() != want {
			t.Errorf("%q: full path %q, want %q", lookup, n.FullPath(), want)
		}
	}
}

func TestFindMultiSegment(t *testing.T) {
	// a section header may itself contain separators; lookups resolve
	// through it segment by segment
	root := NewRoot()
	sec := NewSection("a/b")
	sec.AddChild(NewField("c", Int, "1"))
	root.AddChild(sec)
	if root.Find("a/b/c") == nil {
		t.Error("a/b/c did not resolve through multi-segment header")
	}
	if root.Find("a") != nil {
		t.Error("partial header prefix must not resolve to a node")
	}
	if root.Find("a/b") != sec {
		t.Error("a/b did not resolve to the section")
	}
}

func TestFindBacktracks(t *testing.T) {
	// two sibling sections named s; only the second holds x
	root := NewRoot()
	s1 := NewSection("s")
	s1.AddChild(NewField("y", Int, "1"))
	s2 := NewSection("s")
	s2.AddChild(NewField("x", Int, "2"))
	root.AddChild(s1)
	root.AddChild(s2)
	n := root.Find("s/x")
	if n == nil {
		t.Fatal("s/x not found")
	}
	if n.Parent() != s2 {
		t.Error("resolved into the wrong sibling")
	}
}

func TestFindMisses(t *testing.T) {
	root := demoTree()
	for _, lookup := range []string{"", "nope", "outer/nope", "outer/inner/b/deeper", "top/x"} {
		if n := root.Find(lookup); n != nil {
			t.Errorf("%q resolved to %q, want nil", lookup, n.FullPath())
		}
	}
}

func TestChildOps(t *testing.T) {
	root := demoTree()
	outer := root.Find("outer")
	if got := len(root.Children(All)); got != 3 {
		t.Fatalf("root has %d children, want 3", got)
	}
	if got := len(root.Children(SectionType)); got != 1 {
		t.Fatalf("root has %d sections, want 1", got)
	}
	if root.ChildIndex(outer) != 1 {
		t.Errorf("outer at index %d, want 1", root.ChildIndex(outer))
	}
	extra := NewField("extra", Bool, "true")
	root.InsertChild(0, extra)
	if root.ChildIndex(extra) != 0 || root.ChildIndex(outer) != 2 {
		t.Error("insert did not shift children")
	}
	if !root.RemoveChild(extra) {
		t.Error("remove reported not found")
	}
	if extra.Parent() != nil {
		t.Error("removed child kept its parent")
	}
	if root.RemoveChild(extra) {
		t.Error("double remove reported found")
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := demoTree()
	clone := root.Clone()
	if clone.Parent() != nil {
		t.Error("clone has a parent")
	}
	cb := clone.Find("outer/inner/b")
	if cb == nil {
		t.Fatal("clone lost outer/inner/b")
	}
	cb.SetVal("99", Int)
	ob := root.Find("outer/inner/b")
	if ob.Val() != "3" {
		t.Errorf("mutating the clone changed the original: %q", ob.Val())
	}
	if cb.FullPath() != "outer/inner/b" {
		t.Errorf("clone full path %q", cb.FullPath())
	}
}

func TestWalk(t *testing.T) {
	root := demoTree()
	var fields []string
	root.Walk(FieldType, func(n *Node) error {
		fields = append(fields, n.FullPath())
		return nil
	})
	want := []string{"top", "outer/a", "outer/inner/b"}
	if len(fields) != len(want) {
		t.Fatalf("walked %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("walk order %v, want %v", fields, want)
			break
		}
	}
	total := 0
	root.Walk(All, func(n *Node) error {
		total++
		return nil
	})
	if total != 7 {
		t.Errorf("walked %d nodes, want 7", total)
	}
}
