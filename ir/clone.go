package ir

import "slices"

// CloneValue returns a deep copy of v. Node lists are not values and
// yield nil.
func CloneValue(v Value) Value {
	switch x := v.(type) {
	case *Int:
		c := *x
		return &c
	case *Float:
		c := *x
		return &c
	case *String:
		c := *x
		return &c
	case *Enum:
		c := *x
		c.items = slices.Clone(x.items)
		return &c
	case *Vector:
		c := &Vector{leaf: x.leaf}
		for i, f := range x.c {
			fc := *f
			c.c[i] = &fc
		}
		return c
	case *Tensor:
		c := *x
		return &c
	case *DimSet:
		c := *x
		return &c
	case *List:
		if x.nodeList {
			return nil
		}
		c := &List{leaf: x.leaf, size: x.size}
		for _, e := range x.elems {
			ce := make([]Value, len(e))
			for i, v := range e {
				ce[i] = CloneValue(v)
			}
			c.elems = append(c.elems, ce)
		}
		return c
	}
	return nil
}
