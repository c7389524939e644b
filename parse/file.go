package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
)

// ParseFile parses the file at path. The format defaults to the one
// implied by the file extension and the root is named after the file
// name without its extension; options override both.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	all := append([]ParseOption{ParseFormat(format.FromPath(path)), ParseName(name)}, opts...)
	root, err := Parse(d, all...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// ParseCase parses every file below dir. Each directory becomes a node
// named after it holding one node per entry, visited in lexical order.
// Hidden entries are skipped.
func ParseCase(dir string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	return parseDir(dir, filepath.Base(filepath.Clean(dir)), opts, pOpts)
}

func parseDir(dir, name string, opts []ParseOption, pOpts *parseOpts) (*ir.Node, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var items []ir.Item
	for _, ent := range ents {
		if strings.HasPrefix(ent.Name(), ".") {
			pOpts.logger.Debug("skipping hidden entry", "dir", dir, "name", ent.Name())
			continue
		}
		p := filepath.Join(dir, ent.Name())
		var n *ir.Node
		if ent.IsDir() {
			n, err = parseDir(p, ent.Name(), opts, pOpts)
		} else {
			n, err = ParseFile(p, opts...)
		}
		if err != nil {
			return nil, err
		}
		if err := n.Rename(ent.Name()); err != nil {
			return nil, err
		}
		pOpts.logger.Debug("parsed", "path", p, "entries", n.Len())
		items = append(items, n)
	}
	return ir.NewDict(name, items...)
}
