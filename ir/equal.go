package ir

import "slices"

// SameValue reports whether a and b hold the same data, ignoring leaf
// names and numeric bounds.
func SameValue(a, b Value) bool {
	return equalValue(a, b, false)
}

// EqualValue is like [SameValue] but also requires equal leaf names,
// including those nested in lists.
func EqualValue(a, b Value) bool {
	return equalValue(a, b, true)
}

func equalValue(a, b Value, names bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if names && a.Name() != b.Name() {
		return false
	}
	switch x := a.(type) {
	case *Int:
		return x.v == b.(*Int).v
	case *Float:
		return x.v == b.(*Float).v
	case *String:
		return x.v == b.(*String).v
	case *Enum:
		return x.def == b.(*Enum).def
	case *Vector:
		return x.Components() == b.(*Vector).Components()
	case *Tensor:
		return x.c == b.(*Tensor).c
	case *DimSet:
		return x.d == b.(*DimSet).d
	case *List:
		y := b.(*List)
		if x.nodeList || y.nodeList {
			return EqualItem(x, y)
		}
		return slices.EqualFunc(x.elems, y.elems, func(e, f []Value) bool {
			return slices.EqualFunc(e, f, func(v, w Value) bool {
				return equalValue(v, w, names)
			})
		})
	}
	return false
}

// EqualItem reports whether two entries have the same names, the same
// leaf values and the same ordering throughout.
func EqualItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name() != b.Name() {
		return false
	}
	switch x := a.(type) {
	case *Key:
		y, ok := b.(*Key)
		if !ok {
			return false
		}
		return slices.EqualFunc(x.Values(), y.Values(), EqualValue)
	case *Node:
		y, ok := b.(*Node)
		if !ok {
			return false
		}
		return slices.EqualFunc(x.items, y.items, EqualItem)
	case *List:
		y, ok := b.(*List)
		if !ok || x.nodeList != y.nodeList {
			return false
		}
		if !x.nodeList {
			return EqualValue(x, y)
		}
		return slices.EqualFunc(x.nodes, y.nodes, func(m, n *Node) bool {
			return EqualItem(m, n)
		})
	}
	return false
}
