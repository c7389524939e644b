package gomap

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/parse"
)

// Decode stores the entries of n in the value pointed to by p.
func Decode(n *ir.Node, p any) error {
	d, err := yaml.Marshal(ToAny(n))
	if err != nil {
		return fmt.Errorf("could not map %s: %w", n.Name(), err)
	}
	if err := yaml.Unmarshal(d, p); err != nil {
		return fmt.Errorf("could not decode %s into %T: %w", n.Name(), p, err)
	}
	return nil
}

// Load parses d and decodes the result into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return Decode(n, p)
}

// FromGo builds a dictionary called name from v, a struct or a map.
// Field order is kept.
func FromGo(name string, v any) (*ir.Node, error) {
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.ParseYAML(), parse.ParseName(name))
}
