package tree

import (
	"testing"
)

func TestToJSON(t *testing.T) {
	root := NewRoot()
	root.AddChild(NewComment("# dropped", false))
	root.AddChild(NewField("n", Int, "42"))
	root.AddChild(NewField("f", Float, "1.5"))
	root.AddChild(NewField("b", Bool, "off"))
	root.AddChild(NewField("s", String, "'x y'"))
	sec := NewSection("sub")
	sec.AddChild(NewField("k", String, "v"))
	root.AddChild(sec)

	out, err := ToJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"n":42,"f":1.5,"b":false,"s":"x y","sub":{"k":"v"}}`
	if string(out) != want {
		t.Errorf("got %s\nwant %s", out, want)
	}
}

func TestToJSONDuplicates(t *testing.T) {
	// last duplicate wins, at the first duplicate's position
	root := NewRoot()
	root.AddChild(NewField("a", Int, "1"))
	root.AddChild(NewField("b", Int, "2"))
	root.AddChild(NewField("a", Int, "3"))

	out, err := ToJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":3,"b":2}`
	if string(out) != want {
		t.Errorf("got %s\nwant %s", out, want)
	}
}

func TestFromJSON(t *testing.T) {
	root, err := FromJSON([]byte(`{"n":42,"f":1.5,"b":true,"s":"x y","v":[1,2,3],"sub":{"k":"v"},"z":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := Param[int64](root, "n"); err != nil || v != 42 {
		t.Errorf("n: %v, %v", v, err)
	}
	if n := root.Find("f"); n == nil || n.Kind() != Float {
		t.Error("f did not come back as a float field")
	}
	if v, err := Param[bool](root, "b"); err != nil || !v {
		t.Errorf("b: %v, %v", v, err)
	}
	// strings with spaces come back quoted
	if n := root.Find("s"); n == nil || n.Val() != "'x y'" {
		t.Errorf("s: %v", root.Find("s"))
	}
	// arrays of scalars become vector fields
	if v, err := Param[[]int64](root, "v"); err != nil || len(v) != 3 || v[0] != 1 {
		t.Errorf("v: %v, %v", v, err)
	}
	if n := root.Find("sub"); n == nil || n.Type() != SectionType {
		t.Error("sub did not come back as a section")
	}
	if v, err := Param[string](root, "z"); err != nil || v != "" {
		t.Errorf("z: %q, %v", v, err)
	}
}

func TestFromJSONErrs(t *testing.T) {
	for _, in := range []string{
		`[1,2]`,
		`"scalar"`,
		`{"a":[{"x":1}]}`,
		`{"a":`,
	} {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{"a":1,"sub":{"b":"x","c":false},"d":2.5}`
	root, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := ToJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s\nwant %s", out, in)
	}
}
