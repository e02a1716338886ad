package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, arg := range inputArgs(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := hit.Check(arg, d); err != nil {
			fmt.Fprintf(cc.Out, "%v\n", err)
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
