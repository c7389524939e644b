package ir

import (
	"fmt"
	"log/slog"
	"slices"
)

// Item is an entry of a [Node]: a *Key, a child *Node, or a node
// *List.
type Item interface {
	Name() string
	isItem()
}

// container is anything that owns nodes.
type container interface {
	Item
	owner() container
	detach(Item)
}

// Node is a named dictionary. Its entries keep the order in which they
// were read or inserted, and names are unique among them.
type Node struct {
	name   string
	parent container
	items  []Item
}

// NewNode creates a dictionary holding keys.
func NewNode(name string, keys ...*Key) (*Node, error) {
	n := &Node{name: name}
	for _, k := range keys {
		if err := n.AddKey(k); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// NewDict assembles a dictionary from its entries in file order. Unlike
// [Node.AddChild], keys and child dictionaries may be interleaved.
func NewDict(name string, items ...Item) (*Node, error) {
	n := &Node{name: name}
	for _, it := range items {
		if err := n.insert(len(n.items), it, false); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (n *Node) Name() string { return n.name }
func (*Node) isItem() {}

func (n *Node) owner() container {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) detach(it Item) {
	if i := slices.Index(n.items, it); i != -1 {
		n.items = slices.Delete(n.items, i, i+1)
	}
}

// Parent returns the *Node or node *List holding n, or nil for a root.
func (n *Node) Parent() Item {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Rename(name string) error {
	if p, ok := n.parent.(*Node); ok {
		if i := p.Index(name); i != -1 && p.items[i] != Item(n) {
			return fmt.Errorf("%w: %s already has an entry %q", ErrDuplicateName, p.name, name)
		}
	}
	n.name = name
	return nil
}

func (n *Node) Len() int { return len(n.items) }

// Items returns the entries of n in order.
func (n *Node) Items() []Item {
	return slices.Clone(n.items)
}

func (n *Node) Keys() []*Key {
	var res []*Key
	for _, it := range n.items {
		if k, ok := it.(*Key); ok {
			res = append(res, k)
		}
	}
	return res
}

// Children returns the child dictionaries and node lists of n in order.
func (n *Node) Children() []Item {
	var res []Item
	for _, it := range n.items {
		if _, ok := it.(*Key); !ok {
			res = append(res, it)
		}
	}
	return res
}

func (n *Node) hasKeys() bool {
	for _, it := range n.items {
		if _, ok := it.(*Key); ok {
			return true
		}
	}
	return false
}

func (n *Node) Index(name string) int {
	return slices.IndexFunc(n.items, func(it Item) bool {
		return it.Name() == name
	})
}

// Item returns the entry called name, or nil.
func (n *Node) Item(name string) Item {
	i := n.Index(name)
	if i == -1 {
		return nil
	}
	return n.items[i]
}

func (n *Node) Key(name string) *Key {
	k, _ := n.Item(name).(*Key)
	return k
}

func (n *Node) Child(name string) *Node {
	c, _ := n.Item(name).(*Node)
	return c
}

func (n *Node) List(name string) *List {
	l, _ := n.Item(name).(*List)
	return l
}

func (n *Node) AddKey(k *Key) error {
	return n.insert(len(n.items), k, true)
}

// AddChild appends a child dictionary or node list. A node holding keys
// cannot gain children.
func (n *Node) AddChild(c Item) error {
	if _, ok := c.(*Key); ok {
		return fmt.Errorf("%w: key %s is not a child", ErrStructure, c.Name())
	}
	return n.insert(len(n.items), c, true)
}

// Insert places it at position pos among the entries of n.
func (n *Node) Insert(pos int, it Item) error {
	if pos < 0 || pos > len(n.items) {
		return fmt.Errorf("%w: position %d in %s (len %d)", ErrStructure, pos, n.name, len(n.items))
	}
	return n.insert(pos, it, true)
}

func (n *Node) insert(pos int, it Item, strict bool) error {
	if err := n.checkInsert(it, nil, strict); err != nil {
		return err
	}
	release(it)
	pos = min(pos, len(n.items))
	switch x := it.(type) {
	case *Key:
		x.parent = n
	case *Node:
		x.parent = n
	case *List:
		x.parent = n
	}
	n.items = slices.Insert(n.items, pos, it)
	return nil
}

// checkInsert validates adding it to n, disregarding the entry skip.
func (n *Node) checkInsert(it, skip Item, strict bool) error {
	if it == nil {
		return fmt.Errorf("%w: nil entry in %s", ErrStructure, n.name)
	}
	if i := n.Index(it.Name()); i != -1 && n.items[i] != it && n.items[i] != skip {
		return fmt.Errorf("%w: %s already has an entry %q", ErrDuplicateName, n.name, it.Name())
	}
	switch x := it.(type) {
	case *Key:
		return nil
	case *List:
		if !x.nodeList {
			return fmt.Errorf("%w: value list %s cannot be a child of %s", ErrStructure, x.name, n.name)
		}
	case *Node:
	default:
		return fmt.Errorf("%w: unknown entry %T", ErrStructure, it)
	}
	if strict {
		for _, e := range n.items {
			if _, ok := e.(*Key); ok && e != skip {
				return fmt.Errorf("%w: %s holds keys and cannot gain child %s", ErrStructure, n.name, it.Name())
			}
		}
	}
	for c := container(n); c != nil; c = c.owner() {
		if Item(c) == it {
			return fmt.Errorf("%w: %s cannot be placed inside itself", ErrStructure, it.Name())
		}
	}
	return nil
}

// release detaches it from its current owner.
func release(it Item) {
	switch x := it.(type) {
	case *Key:
		if x.parent != nil {
			x.parent.detach(x)
			x.parent = nil
		}
	case *Node:
		if x.parent != nil {
			x.parent.detach(x)
			x.parent = nil
		}
	case *List:
		if x.parent != nil {
			x.parent.detach(x)
			x.parent = nil
		}
	}
}

// Remove detaches it from n.
func (n *Node) Remove(it Item) error {
	if it == nil || slices.Index(n.items, it) == -1 {
		return fmt.Errorf("%w: %s is not an entry of %s", ErrNotFound, itemName(it), n.name)
	}
	release(it)
	return nil
}

// Delete removes the entry called name.
func (n *Node) Delete(name string) error {
	it := n.Item(name)
	if it == nil {
		return fmt.Errorf("%w: %s has no entry %q", ErrNotFound, n.name, name)
	}
	release(it)
	return nil
}

// Replace puts it in the position of old. Replacing a key with a
// dictionary is allowed only when old is the last key of n.
func (n *Node) Replace(old, it Item) error {
	i := slices.Index(n.items, old)
	if old == nil || i == -1 {
		return fmt.Errorf("%w: %s is not an entry of %s", ErrNotFound, itemName(old), n.name)
	}
	if old == it {
		return nil
	}
	_, oldKey := old.(*Key)
	if err := n.checkInsert(it, old, oldKey); err != nil {
		return err
	}
	release(old)
	if j := slices.Index(n.items, it); j != -1 && j < i {
		i--
	}
	return n.insert(i, it, false)
}

// SetOrder reorders the entries of n. Entries named in names come first
// in that order; the rest follow in their prior order. Names that match
// no entry are logged to slog.Default and returned.
func (n *Node) SetOrder(names ...string) []string {
	return n.SetOrderLog(nil, names...)
}

// SetOrderLog is SetOrder with warnings going to l, or to slog.Default
// when l is nil.
func (n *Node) SetOrderLog(l *slog.Logger, names ...string) []string {
	if l == nil {
		l = slog.Default()
	}
	var missing []string
	ordered := make([]Item, 0, len(n.items))
	used := make([]bool, len(n.items))
	for _, name := range names {
		i := n.Index(name)
		if i == -1 {
			l.Warn("no such entry, ignored in ordering", "node", n.name, "entry", name)
			missing = append(missing, name)
			continue
		}
		if used[i] {
			continue
		}
		used[i] = true
		ordered = append(ordered, n.items[i])
	}
	for i, it := range n.items {
		if !used[i] {
			ordered = append(ordered, it)
		}
	}
	n.items = ordered
	return missing
}

func itemName(it Item) string {
	if it == nil {
		return "<nil>"
	}
	return it.Name()
}
