package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hit-format/go-hit/token"
)

// ToJSON projects the tree onto JSON: sections become objects, fields
// become scalars coerced per their Kind, comments are dropped. Child
// order is preserved. HIT allows duplicate sibling names but JSON does
// not; the last duplicate wins (keeping the first one's position).
func ToJSON(n *Node) ([]byte, error) {
	if n.typ == FieldType {
		var buf bytes.Buffer
		if err := jsonValue(&buf, n); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	var buf bytes.Buffer
	if err := jsonObject(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonEntry struct {
	key string
	n   *Node
}

func jsonObject(buf *bytes.Buffer, n *Node) error {
	var (
		entries []jsonEntry
		index   = map[string]int{}
	)
	for _, c := range n.children {
		if c.typ != SectionType && c.typ != FieldType {
			continue
		}
		if i, ok := index[c.path]; ok {
			entries[i].n = c
			continue
		}
		index[c.path] = len(entries)
		entries = append(entries, jsonEntry{key: c.path, n: c})
	}
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if e.n.typ == SectionType {
			if err := jsonObject(buf, e.n); err != nil {
				return err
			}
			continue
		}
		if err := jsonValue(buf, e.n); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func jsonValue(buf *bytes.Buffer, n *Node) error {
	s, err := n.StrVal()
	if err != nil {
		return err
	}
	switch n.kind {
	case Int:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			buf.WriteString(strconv.FormatInt(i, 10))
			return nil
		}
	case Float:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			return nil
		}
	case Bool:
		if b, ok := token.BoolValue(s); ok {
			buf.WriteString(strconv.FormatBool(b))
			return nil
		}
	case None:
		if s == "" {
			buf.WriteString("null")
			return nil
		}
	}
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(out)
	return nil
}

// FromJSON rebuilds a tree from a JSON object: objects become sections,
// scalars become fields, and arrays of scalars become whitespace-joined
// vector fields. Key order of the JSON text is preserved.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValue, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top-level JSON value must be an object", ErrValue)
	}
	root := NewRoot()
	if err := jsonObjectInto(dec, root); err != nil {
		return nil, err
	}
	return root, nil
}

func jsonObjectInto(dec *json.Decoder, parent *Node) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValue, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: object key %v", ErrValue, keyTok)
		}
		if err := jsonValueInto(dec, parent, key); err != nil {
			return err
		}
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrValue, err)
	}
	return nil
}

func jsonValueInto(dec *json.Decoder, parent *Node, key string) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValue, err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			sec := NewSection(key)
			parent.AddChild(sec)
			return jsonObjectInto(dec, sec)
		case '[':
			return jsonArrayInto(dec, parent, key)
		}
		return fmt.Errorf("%w: unexpected %v", ErrValue, v)
	case string:
		parent.AddChild(NewField(key, String, quoteValue(v)))
	case json.Number:
		kind := Int
		if strings.ContainsAny(v.String(), ".eE") {
			kind = Float
		}
		parent.AddChild(NewField(key, kind, v.String()))
	case bool:
		parent.AddChild(NewField(key, Bool, strconv.FormatBool(v)))
	case nil:
		parent.AddChild(NewField(key, None, "''"))
	default:
		return fmt.Errorf("%w: unexpected JSON token %v", ErrValue, tok)
	}
	return nil
}

func jsonArrayInto(dec *json.Decoder, parent *Node, key string) error {
	var elts []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValue, err)
		}
		switch v := tok.(type) {
		case string:
			elts = append(elts, v)
		case json.Number:
			elts = append(elts, v.String())
		case bool:
			elts = append(elts, strconv.FormatBool(v))
		default:
			return fmt.Errorf("%w: array %q may hold scalars only", ErrValue, key)
		}
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrValue, err)
	}
	parent.AddChild(NewField(key, String, quoteValue(strings.Join(elts, " "))))
	return nil
}

func quoteValue(s string) string {
	if token.NeedsQuote(s) {
		return token.Quote(s)
	}
	return s
}
