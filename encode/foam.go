package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/foamdict/ir"
)

func writeEntries(w io.Writer, items []ir.Item, depth int, es *EncState, top bool) error {
	for i, it := range items {
		if i > 0 && (top || isBlock(it) || isBlock(items[i-1])) {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeItem(w, it, depth, es); err != nil {
			return err
		}
	}
	return nil
}

func isBlock(it ir.Item) bool {
	switch x := it.(type) {
	case *ir.Node, *ir.List:
		return true
	case *ir.Key:
		return verticalList(x) != nil
	}
	return false
}

func writeItem(w io.Writer, it ir.Item, depth int, es *EncState) error {
	ind := es.indentString(depth)
	name, err := nameText(it.Name())
	if err != nil {
		return err
	}
	switch x := it.(type) {
	case *ir.Node:
		head := ind + es.color(defaultKind, DictColor, name) + "\n" + ind + es.color(defaultKind, SepColor, "{") + "\n"
		if err := writeString(w, head); err != nil {
			return err
		}
		if err := writeEntries(w, x.Items(), depth+1, es, false); err != nil {
			return err
		}
		return writeString(w, ind+es.color(defaultKind, SepColor, "}")+"\n")
	case *ir.List:
		if !x.IsNodeList() {
			return fmt.Errorf("%w: value list %s used as an entry", ErrEncoding, x.Name())
		}
		head := ind + es.color(defaultKind, ListColor, name) + "\n" + ind + es.color(defaultKind, SepColor, "(") + "\n"
		if err := writeString(w, head); err != nil {
			return err
		}
		for _, n := range x.Nodes() {
			if err := writeItem(w, n, depth+1, es); err != nil {
				return err
			}
		}
		return writeString(w, ind+es.color(defaultKind, SepColor, ");")+"\n")
	case *ir.Key:
		return writeKey(w, x, name, depth, es)
	}
	return fmt.Errorf("%w: unknown entry %T", ErrEncoding, it)
}

func writeKey(w io.Writer, k *ir.Key, name string, depth int, es *EncState) error {
	ind := es.indentString(depth)
	semi := es.color(defaultKind, SepColor, ";")
	if l := verticalList(k); l != nil {
		var b strings.Builder
		b.WriteString(ind + es.color(defaultKind, KeyColor, name) + "\n")
		b.WriteString(ind + es.color(defaultKind, SepColor, "(") + "\n")
		inner := es.indentString(depth + 1)
		for _, elem := range l.Elems() {
			s, err := valuesText(elem, es)
			if err != nil {
				return err
			}
			b.WriteString(inner + s + "\n")
		}
		b.WriteString(ind + es.color(defaultKind, SepColor, ")") + semi + "\n")
		return writeString(w, b.String())
	}
	if k.Len() == 0 {
		return writeString(w, ind+es.color(defaultKind, KeyColor, name)+semi+"\n")
	}
	vals, err := valuesText(k.Values(), es)
	if err != nil {
		return err
	}
	pad := " "
	if len(name) < es.column {
		pad = strings.Repeat(" ", es.column-len(name))
	}
	return writeString(w, ind+es.color(defaultKind, KeyColor, name)+pad+vals+semi+"\n")
}
