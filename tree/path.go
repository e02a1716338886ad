package tree

import "strings"

// SectionClose is the closing-path sentinel that terminates a section
// in source text. It never names real content.
const SectionClose = "../"

// PathNorm returns the canonical form of a HIT path: no consecutive
// slashes, no leading "./", no trailing slash.
func PathNorm(path string) string {
	segs := splitPath(path)
	return strings.Join(segs, "/")
}

// PathJoin joins relative HIT paths into a single normalized path,
// skipping empty components.
func PathJoin(paths []string) string {
	var segs []string
	for _, p := range paths {
		segs = append(segs, splitPath(p)...)
	}
	return strings.Join(segs, "/")
}

// splitPath splits a path on '/' dropping empty and "." segments.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	res := parts[:0:len(parts)]
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		res = append(res, p)
	}
	return res
}
