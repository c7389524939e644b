package parse

import (
	"log/slog"

	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
)

type parseOpts struct {
	format    format.Format
	name      string
	logger    *slog.Logger
	positions map[ir.Item]*token.Pos
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.FoamFormat, name: "root"}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		pOpts.logger = slog.Default()
	}
	return pOpts
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFoam() ParseOption {
	return ParseFormat(format.FoamFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseName sets the name of the root node. It defaults to "root".
func ParseName(name string) ParseOption {
	return func(o *parseOpts) { o.name = name }
}
func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

// ParsePositions records the position of the name of every entry read
// from dictionary text.
func ParsePositions(m map[ir.Item]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func trackPos(it ir.Item, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[it] = pos
	}
}
