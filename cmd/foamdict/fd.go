package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/foamdict/eval"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/parse"

	"github.com/scott-cotton/cli"
)

func fdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.F && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -f[oam] -y[aml]", cli.ErrUsage)
	}
	cfg.setupLog()
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readDict reads a dictionary file, a case directory, or stdin for "-",
// expanding macros when asked to.
func readDict(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	root, err := readInput(cfg, cc, arg)
	if err != nil || !cfg.Expand {
		return root, err
	}
	if err := eval.Expand(root); err != nil {
		return nil, err
	}
	return root, nil
}

func readInput(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	opts := cfg.parseOpts()
	if arg == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return parse.Parse(d, append(opts, parse.ParseName("stdin"))...)
	}
	fi, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		theLog.Debug("parsing case", "dir", arg)
		return parse.ParseCase(filepath.Clean(arg), opts...)
	}
	return parse.ParseFile(arg, opts...)
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
