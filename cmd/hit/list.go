package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/query"
	"github.com/hit-format/go-hit/tree"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		hit.Explode(root)
		var fields []*tree.Node
		if cfg.Where != "" {
			fields, err = query.Select(root, cfg.Where)
			if err != nil {
				return fmt.Errorf("error querying %s: %w", arg, err)
			}
		} else {
			root.Walk(tree.FieldType, func(n *tree.Node) error {
				fields = append(fields, n)
				return nil
			})
		}
		for _, f := range fields {
			fmt.Fprintf(cc.Out, "%s = %s\n", f.FullPath(), f.Val())
		}
	}
	return nil
}
