package main

import (
	"fmt"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: convert requires at least one file", cli.ErrUsage)
	}
	for _, file := range args {
		root, err := readDict(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		out := cfg.convertFormat(file)
		if cfg.Dir == "" {
			if err := encode.Encode(root, cc.Out, encode.EncodeFormat(out)); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			continue
		}
		p, err := encode.WriteTo(root, cfg.Dir, encode.EncodeFormat(out))
		if err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
		theLog.Info("converted", "from", file, "to", p)
	}
	return nil
}

// convertFormat is the format given by flags, or else the one that is
// not the input's.
func (cfg *ConvertConfig) convertFormat(file string) format.Format {
	if cfg.OutFormat != nil || cfg.F || cfg.Y {
		return cfg.outFormat()
	}
	in := format.FromPath(file)
	if f := cfg.inFormat(); f != nil {
		in = *f
	}
	if in.IsYAML() {
		return format.FoamFormat
	}
	return format.YAMLFormat
}
