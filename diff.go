package hit

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hit-format/go-hit/encode"
	"github.com/hit-format/go-hit/tree"
)

// Diff renders both trees canonically and returns a line-oriented diff
// of the results: lines prefixed "-" are only in a, "+" only in b, and
// " " common to both. Returns "" when the trees render identically.
func Diff(a, b *tree.Node) (string, error) {
	as, err := encode.String(a)
	if err != nil {
		return "", err
	}
	bs, err := encode.String(b)
	if err != nil {
		return "", err
	}
	if as == bs {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(as, bs)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
