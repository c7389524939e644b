package ir

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Key is a named entry holding an ordered set of uniquely named leaf
// values, as in `div(phi,U) Gauss linear;`.
type Key struct {
	name   string
	parent *Node
	leaves *linkedhashmap.Map
}

func NewKey(name string, vals ...Value) (*Key, error) {
	k := &Key{name: name, leaves: linkedhashmap.New()}
	for _, v := range vals {
		if err := k.Append(v); err != nil {
			return nil, err
		}
	}
	return k, nil
}

func (k *Key) Name() string { return k.name }
func (*Key) isItem() {}

// Parent returns the node holding k, or nil.
func (k *Key) Parent() *Node { return k.parent }

func (k *Key) Len() int { return k.leaves.Size() }

func (k *Key) Append(v Value) error {
	if err := checkLeaf(k.name, v); err != nil {
		return err
	}
	if _, ok := k.leaves.Get(v.Name()); ok {
		return fmt.Errorf("%w: key %s already has a value %q", ErrDuplicateName, k.name, v.Name())
	}
	k.leaves.Put(v.Name(), v)
	return nil
}

func checkLeaf(key string, v Value) error {
	if v == nil {
		return fmt.Errorf("%w: nil value for key %s", ErrStructure, key)
	}
	if l, ok := v.(*List); ok && l.nodeList {
		return fmt.Errorf("%w: node list %s cannot be a value of key %s", ErrStructure, l.name, key)
	}
	return nil
}

func (k *Key) Get(name string) (Value, bool) {
	v, ok := k.leaves.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// First returns the first leaf of k, or nil when k has none.
func (k *Key) First() Value {
	it := k.leaves.Iterator()
	if !it.Next() {
		return nil
	}
	return it.Value().(Value)
}

func (k *Key) Names() []string {
	res := make([]string, 0, k.leaves.Size())
	for _, n := range k.leaves.Keys() {
		res = append(res, n.(string))
	}
	return res
}

func (k *Key) Values() []Value {
	res := make([]Value, 0, k.leaves.Size())
	for _, v := range k.leaves.Values() {
		res = append(res, v.(Value))
	}
	return res
}

// Replace substitutes the leaf named old with v, keeping its position.
// When v carries a different name, that name must not already be held
// by another leaf.
func (k *Key) Replace(old string, v Value) error {
	if err := checkLeaf(k.name, v); err != nil {
		return err
	}
	if _, ok := k.leaves.Get(old); !ok {
		return fmt.Errorf("%w: key %s has no value %q", ErrNotFound, k.name, old)
	}
	if v.Name() == old {
		k.leaves.Put(old, v)
		return nil
	}
	if _, ok := k.leaves.Get(v.Name()); ok {
		return fmt.Errorf("%w: key %s already has a value %q", ErrDuplicateName, k.name, v.Name())
	}
	m := linkedhashmap.New()
	it := k.leaves.Iterator()
	for it.Next() {
		if it.Key().(string) == old {
			m.Put(v.Name(), v)
			continue
		}
		m.Put(it.Key(), it.Value())
	}
	k.leaves = m
	return nil
}

// ReplaceValue replaces the leaf carrying v's name.
func (k *Key) ReplaceValue(v Value) error {
	return k.Replace(v.Name(), v)
}

func (k *Key) Delete(name string) error {
	if _, ok := k.leaves.Get(name); !ok {
		return fmt.Errorf("%w: key %s has no value %q", ErrNotFound, k.name, name)
	}
	k.leaves.Remove(name)
	return nil
}

// String renders k as "name : v1, v2".
func (k *Key) String() string {
	vals := k.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return k.name + " : " + strings.Join(parts, ", ")
}

// NameLeaves names the values of a key: words and strings by their own
// text, everything else v<i> by position. A name already taken falls
// back to the positional one.
func NameLeaves(vals []Value) {
	used := make(map[string]bool, len(vals))
	for i, v := range vals {
		name := ""
		switch x := v.(type) {
		case *Enum:
			name = x.Default()
		case *String:
			name = x.Value()
		}
		if name == "" || used[name] {
			name = fmt.Sprintf("v%d", i)
			for j := len(vals); used[name]; j++ {
				name = fmt.Sprintf("v%d", j)
			}
		}
		used[name] = true
		v.SetName(name)
	}
}
