package libdiff

import "github.com/signadot/foamdict/ir"

// Change records one entry that differs between two trees.
type Change struct {
	Op   Op
	Path string
	From ir.Item
	To   ir.Item
}

// Items compares from and to entry by entry. Entries are matched by
// name; nested dictionaries and node lists present on both sides are
// compared recursively, any other differing entry is a Replace.
func Items(from, to *ir.Node) []Change {
	return diffItems(nil, "$", from.Items(), to.Items())
}

func diffItems(res []Change, path string, from, to []ir.Item) []Change {
	toByName := make(map[string]ir.Item, len(to))
	for _, it := range to {
		toByName[it.Name()] = it
	}
	seen := make(map[string]bool, len(from))
	for _, f := range from {
		seen[f.Name()] = true
		p := path + "." + ir.PathField(f.Name())
		t, ok := toByName[f.Name()]
		if !ok {
			res = append(res, Change{Op: Delete, Path: p, From: f})
			continue
		}
		res = diffItem(res, p, f, t)
	}
	for _, t := range to {
		if seen[t.Name()] {
			continue
		}
		res = append(res, Change{Op: Insert, Path: path + "." + ir.PathField(t.Name()), To: t})
	}
	return res
}

func diffItem(res []Change, path string, from, to ir.Item) []Change {
	switch f := from.(type) {
	case *ir.Node:
		if t, ok := to.(*ir.Node); ok {
			return diffItems(res, path, f.Items(), t.Items())
		}
	case *ir.List:
		if t, ok := to.(*ir.List); ok && f.IsNodeList() && t.IsNodeList() {
			return diffItems(res, path, nodeItems(f), nodeItems(t))
		}
	}
	if ir.EqualItem(from, to) {
		return res
	}
	return append(res, Change{Op: Replace, Path: path, From: from, To: to})
}

func nodeItems(l *ir.List) []ir.Item {
	nodes := l.Nodes()
	res := make([]ir.Item, len(nodes))
	for i, n := range nodes {
		res[i] = n
	}
	return res
}
