package token

import (
	"errors"
	"testing"
)

type tokenizeTest struct {
	in    string
	types []Type
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:    `a = 1`,
			types: []Type{TPath, TEquals, TNumber},
		},
		{
			in:    `a = 1.5e-3`,
			types: []Type{TPath, TEquals, TNumber},
		},
		{
			in:    `a = true`,
			types: []Type{TPath, TEquals, TBool},
		},
		{
			in:    `a = Off`,
			types: []Type{TPath, TEquals, TBool},
		},
		{
			in:    `a = hello`,
			types: []Type{TPath, TEquals, TString},
		},
		{
			in:    `a = 'x y z'`,
			types: []Type{TPath, TEquals, TString},
		},
		{
			in:    `a = "he said \"hi\""`,
			types: []Type{TPath, TEquals, TString},
		},
		{
			// quoted values may span lines
			in:    "a = 'x\ny'\nb = 2",
			types: []Type{TPath, TEquals, TString, TPath, TEquals, TNumber},
		},
		{
			in:    `[sec]`,
			types: []Type{TLeftBracket, TPath, TRightBracket},
		},
		{
			in:    `[../]`,
			types: []Type{TLeftBracket, TPath, TRightBracket},
		},
		{
			in:    `[]`,
			types: []Type{TLeftBracket, TRightBracket},
		},
		{
			in:    "# block comment\na = 1",
			types: []Type{TComment, TPath, TEquals, TNumber},
		},
		{
			in:    "a = 1 # inline",
			types: []Type{TPath, TEquals, TNumber, TInlineComment},
		},
		{
			// '#' ends an unquoted value
			in:    "a = b#c",
			types: []Type{TPath, TEquals, TString, TInlineComment},
		},
		{
			in:    "[a/b:c<d>]\nx-y = 2\n[../]",
			types: []Type{TLeftBracket, TPath, TRightBracket, TPath, TEquals, TNumber, TLeftBracket, TPath, TRightBracket},
		},
		{
			// value-looking bodies keep their punctuation
			in:    "a = 1,2",
			types: []Type{TPath, TEquals, TString},
		},
		{
			in: "",
		},
		{
			in: " \t\n\n",
		},
	}
	for i := range tts {
		tt := &tts[i]
		toks, err := Tokenize([]byte(tt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("# doc\n%s\n# got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for j, tok := range toks {
			if tok.Type != tt.types[j] {
				t.Errorf("# doc\n%s\n# token %d: got %v, want %v", tt.in, j, tok.Type, tt.types[j])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	bads := []string{
		"a = 'unterminated",
		"a = \"unterminated\\\"",
		"{",
		"a = 1\n;",
	}
	for _, in := range bads {
		_, err := Tokenize([]byte(in))
		if err == nil {
			t.Errorf("# doc\n%s\n# expected error", in)
			continue
		}
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			t.Errorf("# doc\n%s\n# error %v is not a ScanError", in, err)
		}
	}
}

func TestTokenizeLines(t *testing.T) {
	in := "a = 1\n\n[s]\n  b = 2\n[../]\n"
	toks, err := Tokenize([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	wantLines := []int{1, 1, 1, 3, 3, 3, 4, 4, 4, 5, 5, 5}
	if len(toks) != len(wantLines) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantLines))
	}
	for i, tok := range toks {
		if tok.Line() != wantLines[i] {
			t.Errorf("token %d %q: got line %d, want %d", i, tok.String(), tok.Line(), wantLines[i])
		}
	}
}

func TestValueSameLine(t *testing.T) {
	// a value cannot start on the line after its '='; the next line
	// lexes as a path again
	toks, err := Tokenize([]byte("a =\nb = 2"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Type{TPath, TEquals, TPath, TEquals, TNumber}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "x y", "it's", "a\nb", "tab\there", "#nocomment"} {
		q := Quote(s)
		u := Unquote(q)
		if u != s {
			t.Errorf("round trip %q: got %q via %q", s, u, q)
		}
	}
}
