package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/hit-format/go-hit/encode"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, arg := range inputArgs(args) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := encode.Encode(root, cc.Out, encode.Indent(cfg.Indent)); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			continue
		}
		out, err := encode.String(root, encode.Indent(cfg.Indent))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if err := os.WriteFile(arg, []byte(out), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", arg, err)
		}
	}
	return nil
}
