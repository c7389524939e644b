package encode

import (
	"io"
	"strings"

	"github.com/signadot/foamdict/ir"
)

// Tree writes an outline of root, one line per entry.
func Tree(w io.Writer, root *ir.Node) error {
	var b strings.Builder
	b.WriteString(root.Name() + "\n")
	treeItems(&b, root.Items(), "")
	return writeString(w, b.String())
}

func treeItems(b *strings.Builder, items []ir.Item, prefix string) {
	for i, it := range items {
		branch, next := "├── ", "│   "
		if i == len(items)-1 {
			branch, next = "└── ", "    "
		}
		switch x := it.(type) {
		case *ir.Key:
			b.WriteString(prefix + branch + x.String() + "\n")
		case *ir.Node:
			b.WriteString(prefix + branch + x.Name() + "\n")
			treeItems(b, x.Items(), prefix+next)
		case *ir.List:
			b.WriteString(prefix + branch + x.Name() + " []\n")
			nodes := x.Nodes()
			sub := make([]ir.Item, len(nodes))
			for j, n := range nodes {
				sub[j] = n
			}
			treeItems(b, sub, prefix+next)
		}
	}
}
