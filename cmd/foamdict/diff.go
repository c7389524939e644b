package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := readDict(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := readDict(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var differs bool
	if cfg.Items {
		differs, err = diffItems(cfg, cc.Out, from, to)
	} else {
		differs, err = diffLines(cfg, cc.Out, from, to)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffLines(cfg *DiffConfig, w io.Writer, from, to *ir.Node) (bool, error) {
	lines, err := libdiff.Diff(from, to, encode.EncodeFormat(cfg.outFormat()))
	if err != nil {
		return false, err
	}
	if !libdiff.Changed(lines) {
		return false, nil
	}
	return true, libdiff.Write(w, lines, cfg.Context, diffColor(cfg, w))
}

func diffItems(cfg *DiffConfig, w io.Writer, from, to *ir.Node) (bool, error) {
	changes := libdiff.Items(from, to)
	colorFn := diffColor(cfg, w)
	var b strings.Builder
	for _, c := range changes {
		line := c.Op.Mark() + " " + c.Path
		if c.Op == libdiff.Replace {
			line += ": " + itemText(c.From) + " -> " + itemText(c.To)
		}
		if colorFn != nil {
			line = colorFn(c.Op, line)
		}
		b.WriteString(line + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return len(changes) != 0, err
}

func itemText(it ir.Item) string {
	if k, ok := it.(*ir.Key); ok {
		return k.String()
	}
	s := &strings.Builder{}
	if err := encode.EncodeItem(it, s, encode.EncodeFormat(format.FoamFormat)); err != nil {
		return it.Name()
	}
	return strings.Join(strings.Fields(s.String()), " ")
}

func diffColor(cfg *DiffConfig, w io.Writer) func(libdiff.Op, string) string {
	if !cfg.useColor(w) {
		return nil
	}
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	return func(op libdiff.Op, s string) string {
		switch op {
		case libdiff.Insert:
			return green(s)
		case libdiff.Delete:
			return red(s)
		case libdiff.Replace:
			return yellow(s)
		}
		return s
	}
}
