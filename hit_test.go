package hit_test

import (
	"fmt"
	"os"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/encode"
	"github.com/hit-format/go-hit/tree"
)

func Example() {
	doc := []byte(`
[mesh]
  nx = 10
  dim = 2
[../]
mesh/uniform = true
`)
	root, err := hit.Parse("example.i", doc)
	if err != nil {
		fmt.Println(err)
		return
	}
	hit.Explode(root)

	nx, _ := tree.Param[int64](root, "mesh/nx")
	uniform, _ := tree.Param[bool](root, "mesh/uniform")
	fmt.Println(nx, uniform)

	encode.Encode(root, os.Stdout)
	// Output:
	// 10 true
	// [mesh]
	//   nx = 10
	//   dim = 2
	//   uniform = true
	// [../]
}
