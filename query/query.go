// Package query selects fields from a HIT tree with compiled
// expressions.
package query

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hit-format/go-hit/debug"
	"github.com/hit-format/go-hit/tree"
)

// Env is the expression environment presented for each field visited:
// its name, full path, raw string value, declared kind name, and
// 1-based source line.
type Env struct {
	Name  string
	Path  string
	Value string
	Kind  string
	Line  int
}

// Compile compiles a boolean predicate over Env. Besides the Env
// fields, predicates can call num(s) to read a value as a float.
func Compile(src string) (*vm.Program, error) {
	opts := []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("num", func(params ...any) (any, error) {
			return strconv.ParseFloat(params[0].(string), 64)
		},
			new(func(string) float64)),
	}
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return prog, nil
}

// Select returns the Field nodes under root, in walk order, for which
// the predicate src evaluates true.
func Select(root *tree.Node, src string) ([]*tree.Node, error) {
	prog, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var res []*tree.Node
	err = root.Walk(tree.FieldType, func(n *tree.Node) error {
		v, err := n.StrVal()
		if err != nil {
			return err
		}
		env := Env{
			Name:  n.Path(),
			Path:  n.FullPath(),
			Value: v,
			Kind:  n.Kind().String(),
			Line:  n.Line(),
		}
		out, err := expr.Run(prog, env)
		if err != nil {
			return fmt.Errorf("evaluating %q at %s: %w", src, env.Path, err)
		}
		if debug.Query() {
			debug.Logf("query %q at %s: %v\n", src, env.Path, out)
		}
		if out.(bool) {
			res = append(res, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
