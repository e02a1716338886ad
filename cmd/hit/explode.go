package main

import (
	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/encode"
)

func explode(cfg *ExplodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Explode.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		hit.Explode(root)
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
