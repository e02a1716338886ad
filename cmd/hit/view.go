package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/hit-format/go-hit/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
