package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/encode"
	"github.com/hit-format/go-hit/tree"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pd, err := readArg(args[0])
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args[1:]) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		hit.Explode(root)
		var patched *tree.Node
		if cfg.MergePatch {
			patched, err = hit.ApplyMergePatch(root, pd)
		} else {
			patched, err = hit.ApplyJSONPatch(root, pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.Encode(patched, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
