package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/tree"
)

func toJSON(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range inputArgs(args) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		hit.Explode(root)
		d, err := tree.ToJSON(root)
		if err != nil {
			return fmt.Errorf("error projecting %s: %w", arg, err)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, d, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
