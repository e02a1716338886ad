// Package tree holds the HIT syntax tree: an ordered, rooted tree of
// Root, Section, Comment and Field nodes, with path-addressed lookup
// and typed value coercion.
//
// A node owns its children exclusively and keeps only a back-reference
// to its parent. Children preserve insertion order; order is meaningful
// both for rendering and for first-match lookup semantics. Duplicate
// sibling names are legal.
package tree
