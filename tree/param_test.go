package tree

import (
	"errors"
	"testing"
)

func paramTree() *Node {
	root := NewRoot()
	sec := NewSection("mesh")
	sec.AddChild(NewField("nx", Int, "42"))
	sec.AddChild(NewField("dx", Float, "0.5"))
	sec.AddChild(NewField("uniform", Bool, "yes"))
	sec.AddChild(NewField("name", String, "'left block'"))
	sec.AddChild(NewField("ids", Int, "1 2 3"))
	sec.AddChild(NewField("weights", Float, "0.5 1 1.5"))
	sec.AddChild(NewField("mixed", String, "1 x 3"))
	root.AddChild(sec)
	return root
}

func TestParam(t *testing.T) {
	root := paramTree()

	if v, err := Param[int64](root, "mesh/nx"); err != nil || v != 42 {
		t.Errorf("nx: %v, %v", v, err)
	}
	if v, err := Param[float64](root, "mesh/nx"); err != nil || v != 42 {
		t.Errorf("nx as float: %v, %v", v, err)
	}
	if v, err := Param[float64](root, "mesh/dx"); err != nil || v != 0.5 {
		t.Errorf("dx: %v, %v", v, err)
	}
	if v, err := Param[bool](root, "mesh/uniform"); err != nil || !v {
		t.Errorf("uniform: %v, %v", v, err)
	}
	// quotes are stripped on string coercion
	if v, err := Param[string](root, "mesh/name"); err != nil || v != "left block" {
		t.Errorf("name: %q, %v", v, err)
	}
	if v, err := Param[[]int64](root, "mesh/ids"); err != nil || len(v) != 3 || v[2] != 3 {
		t.Errorf("ids: %v, %v", v, err)
	}
	if v, err := Param[[]float64](root, "mesh/weights"); err != nil || len(v) != 3 || v[1] != 1 {
		t.Errorf("weights: %v, %v", v, err)
	}
	if v, err := Param[[]string](root, "mesh/mixed"); err != nil || len(v) != 3 {
		t.Errorf("mixed: %v, %v", v, err)
	}
}

func TestParamErrs(t *testing.T) {
	root := paramTree()

	if _, err := Param[int64](root, "mesh/name"); !errors.Is(err, ErrValue) {
		t.Errorf("int from string: %v", err)
	}
	if _, err := Param[bool](root, "mesh/nx"); !errors.Is(err, ErrValue) {
		t.Errorf("bool from 42: %v", err)
	}
	if _, err := Param[[]int64](root, "mesh/mixed"); !errors.Is(err, ErrValue) {
		t.Errorf("int vector with bad entry: %v", err)
	}
	if _, err := Param[int64](root, "mesh/nope"); !errors.Is(err, ErrNoParam) {
		t.Errorf("missing param: %v", err)
	}
	if _, err := Param[string](root, "mesh"); !errors.Is(err, ErrNoValue) {
		t.Errorf("value of a section: %v", err)
	}
}

func TestParamOptional(t *testing.T) {
	root := paramTree()

	if v, err := ParamOptional[int64](root, "mesh/nope", 7); err != nil || v != 7 {
		t.Errorf("default: %v, %v", v, err)
	}
	if v, err := ParamOptional[int64](root, "mesh/nx", 7); err != nil || v != 42 {
		t.Errorf("present: %v, %v", v, err)
	}
	// a present but uncoercible value still fails
	if _, err := ParamOptional[int64](root, "mesh/name", 7); !errors.Is(err, ErrValue) {
		t.Errorf("uncoercible: %v", err)
	}
}
