package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Get walks names from root and returns the entry reached, or nil when
// any name is missing. Nodes are searched by entry name, node lists by
// node name.
func Get(root Item, names ...string) Item {
	cur := root
	for _, name := range names {
		cur = step(cur, name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func step(it Item, name string) Item {
	switch x := it.(type) {
	case *Node:
		if x != nil {
			return x.Item(name)
		}
	case *List:
		if x == nil {
			return nil
		}
		if n := x.Node(name); n != nil {
			return n
		}
	}
	return nil
}

// ItemPath returns the path of it from the root of its tree.
func ItemPath(it Item) string {
	var parent Item
	switch x := it.(type) {
	case *Key:
		if x.parent != nil {
			parent = x.parent
		}
	case *Node:
		parent = x.Parent()
	case *List:
		if x.parent != nil {
			parent = x.parent
		}
	}
	if parent == nil {
		return "$"
	}
	return ItemPath(parent) + "." + PathField(it.Name())
}

type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + PathField(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

// ParsePath parses paths like $.divSchemes.'div(phi,U)' and
// $.boundary[0]. Fields holding any of '.[]$ must be quoted.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return 0, err
	}
	return int(u64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the entry of root at path, or nil when the path
// leads nowhere. Indexes select the entries of a node or the nodes of
// a node list.
func GetPath(root Item, path string) (Item, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := root
	for p != nil {
		switch {
		case p.Field != nil:
			res = step(res, *p.Field)
		case p.Index != nil:
			res = index(res, *p.Index)
		default:
			if p.Next != nil {
				return nil, fmt.Errorf("unexpected next w/out index or field")
			}
		}
		if res == nil {
			return nil, nil
		}
		p = p.Next
	}
	return res, nil
}

func index(it Item, i int) Item {
	switch x := it.(type) {
	case *Node:
		if i < len(x.items) {
			return x.items[i]
		}
	case *List:
		if i < len(x.nodes) {
			return x.nodes[i]
		}
	}
	return nil
}

// PathField returns name as a path field, quoted when it holds path
// syntax.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[](), \\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}
