package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hit-format/go-hit/token"
)

// Kind returns the field's declared value kind, or None for non-fields.
func (n *Node) Kind() Kind {
	return n.kind
}

// Val returns the raw text of the field's value exactly as written in
// the input (or as last set), including any surrounding quotes.
func (n *Node) Val() string {
	return n.val
}

// SetVal overwrites the field's value. Kind None leaves the declared
// kind unchanged; setting a Bool field to "42" does not make its kind
// Int, it just makes non-string coercions fail.
func (n *Node) SetVal(val string, kind Kind) {
	n.val = val
	if kind != None {
		n.kind = kind
	}
}

// Text returns a comment node's text, including the '#' marker.
func (n *Node) Text() string {
	return n.text
}

// Inline reports whether a comment node trailed other content on its
// source line.
func (n *Node) Inline() bool {
	return n.inline
}

// StrVal returns the node's value as a string. Quoted values are
// returned with the quotes stripped and escapes resolved. This is the
// only accessor that succeeds for every field regardless of kind.
func (n *Node) StrVal() (string, error) {
	if n.typ != FieldType {
		return "", fmt.Errorf("%w: %s node", ErrNoValue, n.typ)
	}
	return token.Unquote(n.val), nil
}

func (n *Node) BoolVal() (bool, error) {
	s, err := n.StrVal()
	if err != nil {
		return false, err
	}
	b, ok := token.BoolValue(s)
	if !ok {
		return false, fmt.Errorf("%w: cannot convert %q to bool", ErrValue, s)
	}
	return b, nil
}

func (n *Node) IntVal() (int64, error) {
	s, err := n.StrVal()
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot convert %q to int", ErrValue, s)
	}
	return i, nil
}

func (n *Node) FloatVal() (float64, error) {
	s, err := n.StrVal()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot convert %q to float", ErrValue, s)
	}
	return f, nil
}

// The vector accessors interpret the value as whitespace-delimited
// entries and coerce each independently; one bad entry fails the whole
// conversion.

func (n *Node) VecStrVal() ([]string, error) {
	s, err := n.StrVal()
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

func (n *Node) VecIntVal() ([]int64, error) {
	fields, err := n.VecStrVal()
	if err != nil {
		return nil, err
	}
	res := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot convert %q to int vector", ErrValue, f)
		}
		res[i] = v
	}
	return res, nil
}

func (n *Node) VecFloatVal() ([]float64, error) {
	fields, err := n.VecStrVal()
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot convert %q to float vector", ErrValue, f)
		}
		res[i] = v
	}
	return res, nil
}
