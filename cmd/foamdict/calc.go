package main

import (
	"fmt"

	"github.com/signadot/foamdict/eval"
	"github.com/signadot/foamdict/ir"

	"github.com/scott-cotton/cli"
)

func calc(cfg *CalcConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Calc.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: calc requires an expression and at most one file", cli.ErrUsage)
	}
	root, err := readDict(cfg.MainConfig, cc, inputs(args[1:])[0])
	if err != nil {
		return err
	}
	scope := root
	if cfg.Scope != "" {
		path := cfg.Scope
		if path[0] != '$' {
			path = "$." + path
		}
		it, err := ir.GetPath(root, path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		n, ok := it.(*ir.Node)
		if !ok {
			return fmt.Errorf("%w: %s is not a dictionary", ir.ErrNotFound, path)
		}
		scope = n
	}
	res, err := eval.Calc(scope, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, res)
	return err
}
