package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/foamdict/debug"
	"github.com/signadot/foamdict/ir"
)

// Expand replaces every macro value held by a key below root with
// copies of the values of the key it refers to. Referenced keys are
// expanded first. Macros nested inside list values are left alone.
func Expand(root *ir.Node) error {
	x := &expander{
		root:   root,
		active: map[*ir.Key]bool{},
		repl:   map[*ir.Key]*ir.Key{},
	}
	return x.node(root)
}

type expander struct {
	root   *ir.Node
	active map[*ir.Key]bool
	repl   map[*ir.Key]*ir.Key
}

func (x *expander) node(n *ir.Node) error {
	for _, it := range n.Items() {
		switch y := it.(type) {
		case *ir.Node:
			if err := x.node(y); err != nil {
				return err
			}
		case *ir.List:
			for _, c := range y.Nodes() {
				if err := x.node(c); err != nil {
					return err
				}
			}
		case *ir.Key:
			if _, err := x.key(y); err != nil {
				return err
			}
		}
	}
	return nil
}

func (x *expander) key(k *ir.Key) (*ir.Key, error) {
	if nk, ok := x.repl[k]; ok {
		return nk, nil
	}
	if x.active[k] {
		return nil, fmt.Errorf("%w at %s", ErrCycle, ir.ItemPath(k))
	}
	x.active[k] = true
	defer delete(x.active, k)

	var (
		res     []ir.Value
		changed bool
	)
	for _, v := range k.Values() {
		ref, ok := MacroRef(v)
		if !ok {
			res = append(res, ir.CloneValue(v))
			continue
		}
		target, err := x.lookup(k.Parent(), ref)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ir.ItemPath(k), err)
		}
		target, err = x.key(target)
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("expand $%s in %s\n", ref, ir.ItemPath(k))
		}
		for _, tv := range target.Values() {
			res = append(res, ir.CloneValue(tv))
		}
		changed = true
	}
	if !changed {
		x.repl[k] = k
		return k, nil
	}
	ir.NameLeaves(res)
	nk, err := ir.NewKey(k.Name(), res...)
	if err != nil {
		return nil, err
	}
	if p := k.Parent(); p != nil {
		if err := p.Replace(k, nk); err != nil {
			return nil, err
		}
	}
	x.repl[k] = nk
	return nk, nil
}

// MacroRef returns the reference of a macro value, `$name`, without
// the dollar.
func MacroRef(v ir.Value) (string, bool) {
	e, ok := v.(*ir.Enum)
	if !ok {
		return "", false
	}
	d := e.Default()
	if len(d) < 2 || d[0] != '$' {
		return "", false
	}
	return d[1:], true
}

func (x *expander) lookup(scope *ir.Node, ref string) (*ir.Key, error) {
	var it ir.Item
	if rest, ok := strings.CutPrefix(ref, ":"); ok {
		it = ir.Get(x.root, strings.Split(rest, ".")...)
	} else {
		it = Lookup(scope, strings.Split(ref, ".")...)
	}
	k, ok := it.(*ir.Key)
	if !ok {
		return nil, fmt.Errorf("%w: $%s", ErrUndefined, ref)
	}
	return k, nil
}

// Lookup finds names[0] in scope or the nearest enclosing dictionary
// holding it, then descends by the remaining names.
func Lookup(scope *ir.Node, names ...string) ir.Item {
	if len(names) == 0 {
		return nil
	}
	for n := scope; n != nil; n = Enclosing(n) {
		if it := n.Item(names[0]); it != nil {
			return ir.Get(it, names[1:]...)
		}
	}
	return nil
}

// Enclosing returns the dictionary around n, looking through node
// lists, or nil at the root.
func Enclosing(n *ir.Node) *ir.Node {
	switch p := n.Parent().(type) {
	case *ir.Node:
		return p
	case *ir.List:
		return p.Parent()
	}
	return nil
}
