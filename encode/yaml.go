package encode

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/foamdict/ir"
)

var plainYAMLKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// keywords YAML resolvers may read as something other than a string
var yamlKeywords = map[string]bool{
	"true": true, "false": true, "null": true,
	"yes": true, "no": true, "on": true, "off": true,
	"y": true, "n": true,
}

func yamlKey(name string) string {
	if plainYAMLKey.MatchString(name) && !yamlKeywords[strings.ToLower(name)] {
		return name
	}
	return strconv.Quote(name)
}

func encodeYAML(root *ir.Node, w io.Writer, es *EncState) error {
	if root.Len() == 0 {
		return writeString(w, "{}\n")
	}
	for _, it := range root.Items() {
		if err := writeYAMLItem(w, it, 0, es); err != nil {
			return err
		}
	}
	return nil
}

func writeYAMLItem(w io.Writer, it ir.Item, depth int, es *EncState) error {
	ind := es.indentString(depth)
	key := yamlKey(it.Name())
	sep := es.color(defaultKind, SepColor, ":")
	switch x := it.(type) {
	case *ir.Node:
		head := ind + es.color(defaultKind, DictColor, key) + sep
		return writeYAMLNode(w, x, head, depth+1, es)
	case *ir.List:
		if !x.IsNodeList() {
			return fmt.Errorf("%w: value list %s used as an entry", ErrEncoding, x.Name())
		}
		head := ind + es.color(defaultKind, ListColor, key) + sep
		if x.Len() == 0 {
			return writeString(w, head+" []\n")
		}
		if err := writeString(w, head+"\n"); err != nil {
			return err
		}
		dash := es.indentString(depth+1) + es.color(defaultKind, SepColor, "-") + " "
		for _, n := range x.Nodes() {
			head := dash + es.color(defaultKind, DictColor, yamlKey(n.Name())) + sep
			if err := writeYAMLNode(w, n, head, depth+3, es); err != nil {
				return err
			}
		}
		return nil
	case *ir.Key:
		return writeYAMLKey(w, x, ind+es.color(defaultKind, KeyColor, key)+sep, depth, es)
	}
	return fmt.Errorf("%w: unknown entry %T", ErrEncoding, it)
}

func writeYAMLNode(w io.Writer, n *ir.Node, head string, depth int, es *EncState) error {
	if n.Len() == 0 {
		return writeString(w, head+" {}\n")
	}
	if err := writeString(w, head+"\n"); err != nil {
		return err
	}
	for _, it := range n.Items() {
		if err := writeYAMLItem(w, it, depth, es); err != nil {
			return err
		}
	}
	return nil
}

func writeYAMLKey(w io.Writer, k *ir.Key, head string, depth int, es *EncState) error {
	plain := &EncState{}
	l := verticalList(k)
	if l == nil {
		s, err := valuesText(k.Values(), plain)
		if err != nil {
			return err
		}
		kind := ir.StringKind
		if k.Len() == 1 {
			kind = k.First().Kind()
		}
		return writeString(w, head+" "+es.color(kind, ValueColor, strconv.Quote(s))+"\n")
	}
	if l.Len() == 0 {
		return writeString(w, head+" []\n")
	}
	var b strings.Builder
	b.WriteString(head + "\n")
	dash := es.indentString(depth+1) + es.color(defaultKind, SepColor, "-") + " "
	// seven bare numbers would read back as a dimension set
	quoteNumbers := l.Len() == 7 && l.Size() == 7 && allNumbers(l.Values())
	for _, elem := range l.Elems() {
		s, err := valuesText(elem, plain)
		if err != nil {
			return err
		}
		kind := ir.StringKind
		if len(elem) == 1 {
			kind = elem[0].Kind()
		}
		if !kind.IsNumber() || len(elem) != 1 || quoteNumbers {
			s = strconv.Quote(s)
		}
		b.WriteString(dash + es.color(kind, ValueColor, s) + "\n")
	}
	return writeString(w, b.String())
}

func allNumbers(vals []ir.Value) bool {
	for _, v := range vals {
		if !v.Kind().IsNumber() {
			return false
		}
	}
	return true
}
