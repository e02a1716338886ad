package parse

import (
	"bytes"
	"testing"

	"github.com/hit-format/go-hit/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// fields
		`a = 1`,
		`a = 3.14`,
		`a = -1e10`,
		`a = true`,
		`a = off`,
		`a = hello`,
		`a = 'x y z'`,
		`a = "he said \"hi\""`,
		`a = 1 2 3`,

		// sections
		"[s]\n[../]",
		"[s]\na = 1\n[]",
		"[a]\n[b]\nc = 2\n[../]\n[../]",
		"[a/b/c]\nd = 1\n[../]",

		// comments
		"# block\na = 1 # inline",

		// path-valued names
		"x/y/z = 5",

		// malformed-ish
		"[a]",
		"[../]",
		"a =",
		"= 1",
		"[]",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// primary target: parse should not panic
		root, err := Parse("fuzz", data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// secondary: a parsed tree must encode
		var buf bytes.Buffer
		if err := encode.Encode(root, &buf); err != nil {
			t.Fatalf("encode after parse: %v", err)
		}

		// tertiary: the canonical rendering must parse and re-render
		// to itself
		root2, err := Parse("fuzz2", buf.Bytes())
		if err != nil {
			t.Fatalf("reparse failed: %v\n# doc\n%s", err, buf.String())
		}
		again := encode.MustString(root2)
		if again != buf.String() {
			t.Fatalf("round trip unstable\n# first\n%s\n# second\n%s", buf.String(), again)
		}
	})
}
