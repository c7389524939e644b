package gomap

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/foamdict/ir"
)

var switches = map[string]bool{
	"on": true, "yes": true, "true": true,
	"off": false, "no": false, "false": false,
}

// ToAny converts an entry to plain Go values. Dictionaries and node
// lists become yaml.MapSlice so that entry order is kept.
func ToAny(it ir.Item) any {
	switch x := it.(type) {
	case *ir.Node:
		res := make(yaml.MapSlice, 0, x.Len())
		for _, c := range x.Items() {
			res = append(res, yaml.MapItem{Key: c.Name(), Value: ToAny(c)})
		}
		return res
	case *ir.List:
		if !x.IsNodeList() {
			return ValueAny(x)
		}
		nodes := x.Nodes()
		res := make(yaml.MapSlice, 0, len(nodes))
		for _, n := range nodes {
			res = append(res, yaml.MapItem{Key: n.Name(), Value: ToAny(n)})
		}
		return res
	case *ir.Key:
		return KeyAny(x)
	}
	return nil
}

// KeyAny converts the values of k: none gives nil, a single value
// stands alone and several make a slice.
func KeyAny(k *ir.Key) any {
	vals := k.Values()
	switch len(vals) {
	case 0:
		return nil
	case 1:
		return ValueAny(vals[0])
	}
	res := make([]any, len(vals))
	for i, v := range vals {
		res[i] = ValueAny(v)
	}
	return res
}

// ValueAny converts v to int, float64, bool, string or a slice of
// those. A list with a single element gives that element's values.
func ValueAny(v ir.Value) any {
	switch x := v.(type) {
	case *ir.Int:
		return int(x.Value())
	case *ir.Float:
		return x.Value()
	case *ir.String:
		return x.Value()
	case *ir.Enum:
		if b, ok := switches[x.Default()]; ok {
			return b
		}
		return x.Default()
	case *ir.Vector:
		cs := x.Components()
		return floats(cs[:])
	case *ir.Tensor:
		cs := x.Components()
		return floats(cs[:])
	case *ir.DimSet:
		ds := x.Components()
		res := make([]any, len(ds))
		for i, d := range ds {
			res[i] = int(d)
		}
		return res
	case *ir.List:
		elems := x.Elems()
		if len(elems) == 1 {
			// a single group such as (0 1 2 3)
			return values(elems[0])
		}
		res := []any{}
		for _, e := range elems {
			if len(e) == 1 {
				res = append(res, ValueAny(e[0]))
				continue
			}
			res = append(res, values(e))
		}
		return res
	}
	return nil
}

func values(vs []ir.Value) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = ValueAny(v)
	}
	return res
}

func floats(fs []float64) []any {
	res := make([]any, len(fs))
	for i, f := range fs {
		res[i] = f
	}
	return res
}
