package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/foamdict/debug"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
)

// parseYAML loads a YAML rendering of a dictionary. Mappings become
// nodes, sequences holding mappings become node lists, a sequence of
// exactly seven numbers becomes a dimension set, any other sequence
// becomes a key holding a list, and scalars become keys whose values
// are read as dictionary literals.
func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(d, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", token.ErrSyntax, err)
	}
	if debug.YAML() {
		debug.Logf("yaml %s: %#v\n", opts.name, doc)
	}
	switch x := doc.(type) {
	case nil:
		return ir.NewDict(opts.name)
	case yaml.MapSlice:
		return yamlDict(opts.name, x, opts)
	default:
		return nil, fmt.Errorf("%w: document %s is a %T, not a mapping", ir.ErrShape, opts.name, doc)
	}
}

func yamlDict(name string, m yaml.MapSlice, opts *parseOpts) (*ir.Node, error) {
	var items []ir.Item
	for _, mi := range m {
		key := yamlKeyString(mi.Key)
		var (
			it  ir.Item
			err error
		)
		switch v := mi.Value.(type) {
		case yaml.MapSlice:
			it, err = yamlDict(key, v, opts)
		case []any:
			it, err = yamlList(key, v, opts)
		default:
			it, err = yamlScalarKey(key, v)
		}
		if err != nil {
			return nil, err
		}
		items = addEntry(items, it, opts)
	}
	return ir.NewDict(name, items...)
}

func yamlKeyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func yamlList(key string, vals []any, opts *parseOpts) (ir.Item, error) {
	hasMap := false
	for _, v := range vals {
		if _, ok := v.(yaml.MapSlice); ok {
			hasMap = true
			break
		}
	}
	if hasMap {
		return yamlNodeList(key, vals, opts)
	}
	if len(vals) == 7 && allNumbers(vals) {
		ds, err := yamlDimSet("v0", vals)
		if err != nil {
			return nil, err
		}
		return ir.NewKey(key, ds)
	}
	l := ir.NewList(key)
	i := 0
	for _, v := range vals {
		elem, err := yamlElem(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		i = nameByPosition(elem, i)
		if err := l.AppendElem(elem...); err != nil {
			return nil, err
		}
	}
	return ir.NewKey(key, l)
}

func yamlNodeList(key string, vals []any, opts *parseOpts) (*ir.List, error) {
	var nodes []*ir.Node
	for _, v := range vals {
		m, ok := v.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("%w: node list %s mixes mappings and %T", ir.ErrShape, key, v)
		}
		for _, mi := range m {
			name := yamlKeyString(mi.Key)
			var body yaml.MapSlice
			switch b := mi.Value.(type) {
			case nil:
			case yaml.MapSlice:
				body = b
			default:
				return nil, fmt.Errorf("%w: entry %s of node list %s is a %T, not a mapping", ir.ErrShape, name, key, mi.Value)
			}
			n, err := yamlDict(name, body, opts)
			if err != nil {
				return nil, err
			}
			nodes = addNode(nodes, n, opts)
		}
	}
	return ir.NewNodeList(key, nodes...)
}

// yamlElem converts a sequence entry into a list element. Strings are
// read the way rows of a list block are.
func yamlElem(v any) ([]ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return parseRow(x), nil
	case []any:
		nv, err := yamlNested(x)
		if err != nil {
			return nil, err
		}
		return []ir.Value{nv}, nil
	case yaml.MapSlice:
		return nil, fmt.Errorf("%w: unexpected mapping in list", ir.ErrShape)
	}
	sv, err := yamlScalar(v)
	if err != nil {
		return nil, err
	}
	return []ir.Value{sv}, nil
}

// yamlNested converts a nested sequence: seven numbers make a dimension
// set, anything else a single-element list.
func yamlNested(vals []any) (ir.Value, error) {
	if len(vals) == 7 && allNumbers(vals) {
		return yamlDimSet("", vals)
	}
	var elem []ir.Value
	for _, v := range vals {
		var (
			nv  ir.Value
			err error
		)
		switch x := v.(type) {
		case []any:
			nv, err = yamlNested(x)
		case string:
			lits := parseLiterals(x)
			if len(lits) != 1 {
				nv = ir.NewString("", x)
			} else {
				nv = lits[0]
			}
		default:
			nv, err = yamlScalar(v)
		}
		if err != nil {
			return nil, err
		}
		elem = append(elem, nv)
	}
	nameByPosition(elem, 0)
	return ir.NewList("", elem), nil
}

func yamlScalarKey(key string, v any) (*ir.Key, error) {
	switch x := v.(type) {
	case nil:
		return ir.NewKey(key)
	case string:
		vals := parseLiterals(x)
		ir.NameLeaves(vals)
		return ir.NewKey(key, vals...)
	}
	sv, err := yamlScalar(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	ir.NameLeaves([]ir.Value{sv})
	return ir.NewKey(key, sv)
}

func yamlScalar(v any) (ir.Value, error) {
	switch x := v.(type) {
	case bool:
		s := strconv.FormatBool(x)
		return ir.Word(s, s), nil
	case string:
		return ir.Word(x, x), nil
	}
	if i, ok := yamlInt(v); ok {
		return ir.IntLiteral("", i), nil
	}
	if f, ok := yamlFloat(v); ok {
		return ir.FloatLiteral("", f), nil
	}
	return nil, fmt.Errorf("%w: unsupported yaml value %T", ir.ErrShape, v)
}

func yamlInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case uint64:
		if x > 1<<63-1 {
			return 0, false
		}
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		return int64(x), true
	}
	return 0, false
}

func yamlFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

func allNumbers(vals []any) bool {
	for _, v := range vals {
		if _, ok := yamlInt(v); ok {
			continue
		}
		if _, ok := yamlFloat(v); ok {
			continue
		}
		return false
	}
	return true
}

func yamlDimSet(name string, vals []any) (*ir.DimSet, error) {
	exps := make([]int64, len(vals))
	for i, v := range vals {
		e, ok := yamlInt(v)
		if !ok {
			f, _ := yamlFloat(v)
			if f != float64(int64(f)) {
				return nil, fmt.Errorf("%w: dimension set exponent %v is not an integer", ir.ErrShape, v)
			}
			e = int64(f)
		}
		exps[i] = e
	}
	return ir.NewDimSet(name, exps...)
}

// parseLiterals reads the values written in a YAML string as they would
// appear in a statement. Text that does not read as dictionary values is
// kept as words, one per whitespace separated field.
func parseLiterals(s string) []ir.Value {
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil {
		return words(s)
	}
	var vals []ir.Value
	off := 0
	for toks[off].Type != token.TEOF {
		v, err := parseValue(toks, &off, true)
		if err != nil {
			return words(s)
		}
		vals = append(vals, v)
	}
	return vals
}

// parseRow reads the values of a YAML list entry as they would appear
// in one row of a list block.
func parseRow(s string) []ir.Value {
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil {
		return words(s)
	}
	off := 0
	rows, nodes, err := parseRows(toks, &off, newParseOpts(nil))
	if err != nil || len(nodes) != 0 || toks[off].Type != token.TEOF {
		return words(s)
	}
	var res []ir.Value
	for _, r := range rows {
		res = append(res, r...)
	}
	return res
}

func words(s string) []ir.Value {
	var vals []ir.Value
	for _, f := range strings.Fields(s) {
		vals = append(vals, ir.Word(f, f))
	}
	return vals
}
