package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/hit-format/go-hit/encode"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level' default=2"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result back to source files'"`
	Fmt   *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	Type string `cli:"name=t aliases=type desc='coerce to type: string, int, float, bool, strings, ints, floats'"`
	Get  *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where aliases=w desc='filter predicate over {Name, Path, Value, Kind, Line}'"`
	List  *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type ExplodeConfig struct {
	*MainConfig
	Explode *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=merge desc='treat patch as an RFC 7386 merge patch'"`
	Patch      *cli.Command
}

type JSONConfig struct {
	*MainConfig
	JSON *cli.Command
}
