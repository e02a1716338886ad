package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/hit-format/go-hit/encode"
	"github.com/hit-format/go-hit/tree"
)

type parseTest struct {
	in string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: ``,
		},
		{
			in: `a = 1`,
		},
		{
			in: `a = 1.5e-3`,
		},
		{
			in: `a = true`,
		},
		{
			in: `a = 'x y z'`,
		},
		{
			in: "[s]\n[../]",
		},
		{
			in: "[s]\na = 1\n[../]",
		},
		{
			in: "[s]\na = 1\n[]",
		},
		{
			in: "[a]\n[b]\nc = 2\n[../]\n[../]",
		},
		{
			in: "[a]\n[b]\nc = 2\n[]\n[]",
		},
		{
			in: "# head\na = 1 # inline\n# tail",
		},
		{
			in: "x/y/z = 5",
		},
		{
			in: "[x/y]\nz = 5\n[../]",
		},
		{
			in: "top = 1\n[s]\nmid = 2\n[../]\nbot = 3",
		},
		{
			in: "a = 1\na = 2",
		},
		{
			in: "type = SomethingNew<T>",
		},
	}
	for i := range pts {
		pt := &pts[i]
		root, err := Parse("test", []byte(pt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		t.Logf("\n%s\n", encode.MustString(root))
	}
}

type parseErrTest struct {
	in   string
	msg  string
	line int
}

func TestParseErrs(t *testing.T) {
	pts := []parseErrTest{
		{
			in:   "[a]\nb = 1",
			msg:  "missing closing bracket",
			line: 1,
		},
		{
			in:   "[a]\n[b]\nc = 1\n[../]",
			msg:  "missing closing bracket",
			line: 1,
		},
		{
			in:   "[../]",
			msg:  "unmatched section close",
			line: 1,
		},
		{
			in:   "a = 1\n[]",
			msg:  "unmatched section close",
			line: 2,
		},
		{
			in:   "a\nb = 2",
			msg:  "expected '='",
			line: 1,
		},
		{
			in:   "a =",
			msg:  "expected value",
			line: 1,
		},
		{
			in:   "a =\nb = 2",
			msg:  "expected value",
			line: 2,
		},
		{
			in:   "[a b]\n[../]",
			msg:  "expected ']'",
			line: 1,
		},
		{
			in:   "[]extra = 1",
			msg:  "unmatched section close",
			line: 1,
		},
		{
			in:   "a = 'oops",
			msg:  "unterminated",
			line: 1,
		},
		{
			in:   "a = 1\n{",
			msg:  "invalid character",
			line: 2,
		},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse("test", []byte(pt.in))
		if err == nil {
			t.Errorf("# doc\n%s\n# expected error", pt.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("# doc\n%s\n# error %v does not wrap ErrParse", pt.in, err)
		}
		if !strings.Contains(err.Error(), pt.msg) {
			t.Errorf("# doc\n%s\n# error %q does not mention %q", pt.in, err, pt.msg)
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("# doc\n%s\n# error %v is not an Error", pt.in, err)
			continue
		}
		if perr.Line != pt.line {
			t.Errorf("# doc\n%s\n# error line %d, want %d", pt.in, perr.Line, pt.line)
		}
		if perr.Label != "test" {
			t.Errorf("# doc\n%s\n# error label %q, want %q", pt.in, perr.Label, "test")
		}
	}
}

func TestParseKinds(t *testing.T) {
	in := `
i = 42
neg = -7
f = 3.14
e = 1e14
big = 99999999999999999999999
b = yes
s = hello
q = 'x y'
`
	root, err := Parse("test", []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	kinds := map[string]tree.Kind{
		"i":   tree.Int,
		"neg": tree.Int,
		"f":   tree.Float,
		"e":   tree.Float,
		"big": tree.Float,
		"b":   tree.Bool,
		"s":   tree.String,
		"q":   tree.String,
	}
	for name, want := range kinds {
		n := root.Find(name)
		if n == nil {
			t.Errorf("field %q not found", name)
			continue
		}
		if n.Kind() != want {
			t.Errorf("field %q: kind %v, want %v", name, n.Kind(), want)
		}
	}
}

func TestParseStructure(t *testing.T) {
	in := `
top = 1
[outer]
  a = 2
  [inner]
    b = 3
  [../]
[../]
`
	root, err := Parse("test", []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	b := root.Find("outer/inner/b")
	if b == nil {
		t.Fatal("outer/inner/b not found")
	}
	if b.FullPath() != "outer/inner/b" {
		t.Errorf("full path %q", b.FullPath())
	}
	if b.Line() != 6 {
		t.Errorf("line %d, want 6", b.Line())
	}
	inner := root.Find("outer/inner")
	if inner == nil || inner.Type() != tree.SectionType {
		t.Fatal("outer/inner is not a section")
	}
	if inner.Parent().Path() != "outer" {
		t.Errorf("parent %q", inner.Parent().Path())
	}
}

func TestCheck(t *testing.T) {
	if err := Check("ok", []byte("a = 1")); err != nil {
		t.Error(err)
	}
	if err := Check("bad", []byte("[a]")); err == nil {
		t.Error("expected error")
	}
}
