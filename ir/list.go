package ir

import (
	"fmt"
	"slices"
	"strings"
)

// List is either a sequence of elements, each a short run of values,
// or a sequence of named nodes as in a boundary list.
type List struct {
	leaf
	parent   *Node
	nodeList bool
	size     int
	elems    [][]Value
	nodes    []*Node
}

// NewList creates a value list. Each argument is one element.
func NewList(name string, elems ...[]Value) *List {
	l := &List{leaf: leaf{name: name}, size: -1}
	for _, e := range elems {
		l.elems = append(l.elems, slices.Clone(e))
	}
	return l
}

// NewSizedList creates a value list whose total number of values must
// be size.
func NewSizedList(name string, size int, elems ...[]Value) (*List, error) {
	l := NewList(name, elems...)
	if l.Size() != size {
		return nil, fmt.Errorf("%w: list %s declared with %d values, got %d", ErrShape, name, size, l.Size())
	}
	l.size = size
	return l, nil
}

// NewFilledList creates a list of size elements, each holding a copy of
// def named v<i>. The size is declared.
func NewFilledList(name string, size int, def Value) (*List, error) {
	if def == nil || size < 1 {
		return nil, fmt.Errorf("%w: list %s needs a positive size and a placeholder value", ErrShape, name)
	}
	if _, ok := def.(*List); ok {
		return nil, fmt.Errorf("%w: list %s placeholder cannot be a list", ErrShape, name)
	}
	l := NewList(name)
	for i := range size {
		v := CloneValue(def)
		v.SetName(fmt.Sprintf("v%d", i))
		l.elems = append(l.elems, []Value{v})
	}
	l.size = size
	return l, nil
}

// NewNodeList creates a list of nodes. The nodes are detached from any
// previous owner.
func NewNodeList(name string, nodes ...*Node) (*List, error) {
	l := &List{leaf: leaf{name: name}, nodeList: true, size: -1}
	for _, n := range nodes {
		if err := l.AppendNode(n); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *List) Kind() Kind { return ListKind }
func (*List) isItem() {}

func (l *List) owner() container {
	if l.parent == nil {
		return nil
	}
	return l.parent
}

func (l *List) detach(it Item) {
	n, ok := it.(*Node)
	if !ok {
		return
	}
	if i := slices.Index(l.nodes, n); i != -1 {
		l.nodes = slices.Delete(l.nodes, i, i+1)
	}
}

func (l *List) IsNodeList() bool { return l.nodeList }

// Parent returns the node holding a node list.
func (l *List) Parent() *Node { return l.parent }

// DeclaredSize returns the size given at construction, or -1.
func (l *List) DeclaredSize() int { return l.size }

// Len returns the number of elements, or of nodes for a node list.
func (l *List) Len() int {
	if l.nodeList {
		return len(l.nodes)
	}
	return len(l.elems)
}

// Size returns the total number of values across all elements.
func (l *List) Size() int {
	n := 0
	for _, e := range l.elems {
		n += len(e)
	}
	return n
}

func (l *List) Elems() [][]Value {
	res := make([][]Value, len(l.elems))
	for i, e := range l.elems {
		res[i] = slices.Clone(e)
	}
	return res
}

func (l *List) Elem(i int) []Value {
	if i < 0 || i >= len(l.elems) {
		return nil
	}
	return slices.Clone(l.elems[i])
}

// At returns value i of element e, or nil.
func (l *List) At(e, i int) Value {
	if e < 0 || e >= len(l.elems) || i < 0 || i >= len(l.elems[e]) {
		return nil
	}
	return l.elems[e][i]
}

// Values returns the values of all elements in order.
func (l *List) Values() []Value {
	res := make([]Value, 0, l.Size())
	for _, e := range l.elems {
		res = append(res, e...)
	}
	return res
}

func (l *List) checkValues(vals []Value) error {
	if l.nodeList {
		return fmt.Errorf("%w: node list %s cannot hold values", ErrStructure, l.name)
	}
	if l.size >= 0 && l.Size()+len(vals) > l.size {
		return fmt.Errorf("%w: list %s is declared with %d values", ErrShape, l.name, l.size)
	}
	for _, v := range vals {
		if err := checkLeaf(l.name, v); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) AppendElem(vals ...Value) error {
	if err := l.checkValues(vals); err != nil {
		return err
	}
	l.elems = append(l.elems, slices.Clone(vals))
	return nil
}

// AppendUniqueElem appends vals as a new element unless an element with
// the same values exists. It reports whether vals was appended.
func (l *List) AppendUniqueElem(vals ...Value) (bool, error) {
	for _, e := range l.elems {
		if slices.EqualFunc(e, vals, SameValue) {
			return false, nil
		}
	}
	if err := l.checkValues(vals); err != nil {
		return false, err
	}
	l.elems = append(l.elems, slices.Clone(vals))
	return true, nil
}

// AppendValue appends v to element e. e may be Len() to start a new
// element.
func (l *List) AppendValue(e int, v Value) error {
	if err := l.checkValues([]Value{v}); err != nil {
		return err
	}
	switch {
	case e == len(l.elems):
		l.elems = append(l.elems, []Value{v})
	case e >= 0 && e < len(l.elems):
		l.elems[e] = append(l.elems[e], v)
	default:
		return fmt.Errorf("%w: element %d of list %s (len %d)", ErrNotFound, e, l.name, len(l.elems))
	}
	return nil
}

// AppendUniqueValue appends v to element e unless the element already
// holds the same value. It reports whether v was appended.
func (l *List) AppendUniqueValue(e int, v Value) (bool, error) {
	if e >= 0 && e < len(l.elems) {
		if slices.ContainsFunc(l.elems[e], func(x Value) bool { return SameValue(x, v) }) {
			return false, nil
		}
	}
	if err := l.AppendValue(e, v); err != nil {
		return false, err
	}
	return true, nil
}

func (l *List) Nodes() []*Node {
	return slices.Clone(l.nodes)
}

// Node returns the node called name, or nil.
func (l *List) Node(name string) *Node {
	for _, n := range l.nodes {
		if n.name == name {
			return n
		}
	}
	return nil
}

func (l *List) AppendNode(n *Node) error {
	if !l.nodeList {
		return fmt.Errorf("%w: value list %s cannot hold nodes", ErrStructure, l.name)
	}
	if n == nil {
		return fmt.Errorf("%w: nil node in %s", ErrStructure, l.name)
	}
	for c := container(l); c != nil; c = c.owner() {
		if Item(c) == Item(n) {
			return fmt.Errorf("%w: %s cannot be placed inside itself", ErrStructure, n.name)
		}
	}
	release(n)
	n.parent = l
	l.nodes = append(l.nodes, n)
	return nil
}

func (l *List) RemoveNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node in %s", ErrNotFound, l.name)
	}
	if n.parent != container(l) {
		return fmt.Errorf("%w: %s is not a node of %s", ErrNotFound, n.name, l.name)
	}
	release(n)
	return nil
}

func (l *List) String() string {
	var parts []string
	if l.nodeList {
		for _, n := range l.nodes {
			parts = append(parts, n.name)
		}
	} else {
		for _, v := range l.Values() {
			parts = append(parts, v.String())
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}
