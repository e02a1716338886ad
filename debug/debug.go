// Package debug provides env-var gated debug switches for the hit
// libraries and tools.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge   bool
	Explode bool
	Query   bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("HIT_DEBUG_MERGE")
	d.Explode = boolEnv("HIT_DEBUG_EXPLODE")
	d.Query = boolEnv("HIT_DEBUG_QUERY")
	d.LSP = boolEnv("HIT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Explode() bool {
	return d.Explode
}
func Query() bool {
	return d.Query
}
func LSP() bool {
	return d.LSP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
