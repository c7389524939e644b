package main

import (
	"fmt"

	"github.com/signadot/foamdict/encode"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		root, err := readDict(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := encode.Tree(cc.Out, root); err != nil {
			return err
		}
	}
	return nil
}
