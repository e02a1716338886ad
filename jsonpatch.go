package hit

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/hit-format/go-hit/tree"
)

// ApplyMergePatch applies an RFC 7386 JSON merge patch to the JSON
// projection of doc and returns the patched tree. Comments and
// duplicate sibling names do not survive the projection; see
// tree.ToJSON.
func ApplyMergePatch(doc *tree.Node, patch []byte) (*tree.Node, error) {
	dj, err := tree.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(dj, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return tree.FromJSON(merged)
}

// ApplyJSONPatch applies an RFC 6902 JSON patch to the JSON projection
// of doc and returns the patched tree.
func ApplyJSONPatch(doc *tree.Node, patch []byte) (*tree.Node, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	dj, err := tree.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(dj)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return tree.FromJSON(out)
}
