// Package encode renders HIT trees back to text. Re-parsing rendered
// output yields a structurally equivalent tree; indentation is
// proportional to nesting depth but cosmetic only.
package encode
