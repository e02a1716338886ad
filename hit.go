// Package hit parses and manipulates HIT formatted configuration
// input. HIT is a hierarchical, bracket-delimited key/value text
// format:
//
//	[hello]
//	  world = 42
//	[../]
//
// Parse builds a syntax tree from input text; the tree package exposes
// lookup and typed value retrieval, the encode package renders trees
// back to equivalent text, and this package holds the tree rewrites
// (Merge, Explode) and tooling helpers built on them.
package hit

import (
	"github.com/hit-format/go-hit/parse"
	"github.com/hit-format/go-hit/tree"
)

// Parse parses a HIT input and returns the tree's root node. label
// names the input in error messages and can be any string.
func Parse(label string, data []byte) (*tree.Node, error) {
	return parse.Parse(label, data)
}

// Check parses the input, reporting errors only.
func Check(label string, data []byte) error {
	return parse.Check(label, data)
}
