package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/tree"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a parameter path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range inputArgs(args[1:]) {
		root, err := parseArg(arg)
		if err != nil {
			return err
		}
		hit.Explode(root)
		v, err := getTyped(root, path, cfg.Type)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
		fmt.Fprintln(cc.Out, v)
	}
	return nil
}

func getTyped(root *tree.Node, path, typ string) (any, error) {
	switch typ {
	case "", "string":
		return tree.Param[string](root, path)
	case "int":
		return tree.Param[int64](root, path)
	case "float":
		return tree.Param[float64](root, path)
	case "bool":
		return tree.Param[bool](root, path)
	case "strings":
		v, err := tree.Param[[]string](root, path)
		if err != nil {
			return nil, err
		}
		return strings.Join(v, " "), nil
	case "ints":
		v, err := tree.Param[[]int64](root, path)
		if err != nil {
			return nil, err
		}
		return joinVals(v), nil
	case "floats":
		v, err := tree.Param[[]float64](root, path)
		if err != nil {
			return nil, err
		}
		return joinVals(v), nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", cli.ErrUsage, typ)
}

func joinVals[T int64 | float64](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
