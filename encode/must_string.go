package encode

import (
	"bytes"

	"github.com/hit-format/go-hit/tree"
)

// String renders the subtree to a string.
func String(node *tree.Node, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is String for contexts where rendering cannot fail (the
// writer is a buffer; only a broken Color func could panic).
func MustString(node *tree.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
