package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/encode"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	into, err := parseArg(args[0])
	if err != nil {
		return err
	}
	hit.Explode(into)
	for _, arg := range args[1:] {
		from, err := parseArg(arg)
		if err != nil {
			return err
		}
		hit.Explode(from)
		hit.Merge(from, into)
	}
	return encode.Encode(into, cc.Out, cfg.encOpts(cc.Out)...)
}
