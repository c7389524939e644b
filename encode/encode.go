package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
)

const (
	foamIndent  = 4
	yamlIndent  = 2
	foamColumn  = 16
	defaultKind = ir.Kind(0)
)

type EncState struct {
	indent int
	column int

	format format.Format

	Color func(ir.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: -1, column: foamColumn}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 0 {
		es.indent = foamIndent
		if es.format.IsYAML() {
			es.indent = yamlIndent
		}
	}
	return es
}

// Encode writes the entries of root as a document.
func Encode(root *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsYAML() {
		return encodeYAML(root, w, es)
	}
	return writeEntries(w, root.Items(), 0, es, true)
}

// EncodeItem writes a single entry, with its name, at top level.
func EncodeItem(it ir.Item, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsYAML() {
		return writeYAMLItem(w, it, 0, es)
	}
	return writeItem(w, it, 0, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) indentString(depth int) string {
	return strings.Repeat(" ", es.indent*depth)
}

// isWord reports whether s reads back as a single word, or as a macro
// reference when macro is set.
func isWord(s string, macro bool) bool {
	if s == "" {
		return false
	}
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil || len(toks) != 2 || len(toks[0].Bytes) != len(s) {
		return false
	}
	switch toks[0].Type {
	case token.TWord:
		return true
	case token.TDollar:
		return macro && len(s) > 1
	}
	return false
}

func quote(s string) (string, error) {
	if strings.IndexByte(s, '"') != -1 {
		return "", fmt.Errorf("%w: %q cannot be quoted", ErrEncoding, s)
	}
	return `"` + s + `"`, nil
}

func nameText(name string) (string, error) {
	if isWord(name, false) {
		return name, nil
	}
	return quote(name)
}

// valueText renders v as it appears in dictionary text.
func valueText(v ir.Value, es *EncState) (string, error) {
	switch x := v.(type) {
	case *ir.Enum:
		s := x.Default()
		if !isWord(s, true) {
			var err error
			if s, err = quote(s); err != nil {
				return "", err
			}
		}
		return es.color(ir.EnumKind, ValueColor, s), nil
	case *ir.String:
		s, err := quote(x.Value())
		if err != nil {
			return "", err
		}
		return es.color(ir.StringKind, ValueColor, s), nil
	case *ir.List:
		if x.IsNodeList() {
			return "", fmt.Errorf("%w: node list %s used as a value", ErrEncoding, x.Name())
		}
		s, err := valuesText(x.Values(), es)
		if err != nil {
			return "", err
		}
		return es.color(ir.ListKind, SepColor, "(") + s + es.color(ir.ListKind, SepColor, ")"), nil
	case nil:
		return "", fmt.Errorf("%w: nil value", ErrEncoding)
	}
	return es.color(v.Kind(), ValueColor, v.String()), nil
}

func valuesText(vals []ir.Value, es *EncState) (string, error) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		s, err := valueText(v, es)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, " "), nil
}

// verticalList returns the list of a key holding a single list.
func verticalList(k *ir.Key) *ir.List {
	if k.Len() != 1 {
		return nil
	}
	l, _ := k.First().(*ir.List)
	return l
}
