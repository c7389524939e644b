package main

import (
	"fmt"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an entry path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$." + path
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range inputs(args[1:]) {
		root, err := readDict(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		it, err := ir.GetPath(root, path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if it == nil {
			return fmt.Errorf("%w: %s in %s", ir.ErrNotFound, path, file)
		}
		if err := encode.EncodeItem(it, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
	}
	return nil
}
