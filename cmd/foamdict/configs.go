package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log parsing details'"`
	Expand  bool `cli:"name=x aliases=expand desc='expand $macro references after parsing'"`

	F bool `cli:"name=f aliases=foam desc='do i/o in dictionary text'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the input format chosen by flags, if any.
func (cfg *MainConfig) inFormat() *format.Format {
	var f format.Format
	switch {
	case cfg.F:
		f = format.FoamFormat
	case cfg.Y:
		f = format.YAMLFormat
	default:
		return cfg.InFormat
	}
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	return &f
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.F:
		f = format.FoamFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{parse.ParseLogger(theLog)}
	if f := cfg.inFormat(); f != nil {
		res = append(res, parse.ParseFormat(*f))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) setupLog() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Dir string `cli:"name=d aliases=dir desc='write converted files into this directory'"`

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type CalcConfig struct {
	*MainConfig

	Scope string `cli:"name=p aliases=path desc='path of the dictionary to evaluate in'"`

	Calc *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Items   bool `cli:"name=items desc='list changed entries instead of lines'"`
	Context int  `cli:"name=c aliases=context desc='lines of context, -1 for all'"`

	Diff *cli.Command
}
