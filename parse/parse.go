package parse

import (
	"fmt"

	"github.com/signadot/foamdict/debug"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newParseOpts(opts)
	if pOpts.format.IsYAML() {
		return parseYAML(d, pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		token.PrintTokens(toks, pOpts.name)
	}
	off := 0
	items, err := parseEntries(toks, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if toks[off].Type != token.TEOF {
		return nil, token.UnexpectedErr(&toks[off])
	}
	root, err := ir.NewDict(pOpts.name, items...)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s:\n%v\n", pOpts.name, root)
	}
	return root, nil
}

// parseEntries reads dictionary entries up to a closing '}' or the end
// of input, leaving the closer unconsumed.
func parseEntries(toks []token.Token, pi *int, opts *parseOpts) ([]ir.Item, error) {
	var items []ir.Item
	for {
		tok := &toks[*pi]
		switch tok.Type {
		case token.TEOF, token.TRCurl:
			return items, nil
		case token.TWord, token.TString:
		default:
			return nil, token.UnexpectedErr(tok)
		}
		it, err := parseEntry(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		trackPos(it, tok.Pos, opts)
		items = addEntry(items, it, opts)
	}
}

// addEntry appends it, or replaces an earlier entry of the same name in
// place.
func addEntry(items []ir.Item, it ir.Item, opts *parseOpts) []ir.Item {
	for i := range items {
		if items[i].Name() == it.Name() {
			opts.logger.Debug("duplicate entry replaces earlier one", "name", it.Name())
			items[i] = it
			return items
		}
	}
	return append(items, it)
}

func parseEntry(toks []token.Token, pi *int, opts *parseOpts) (ir.Item, error) {
	next := &toks[*pi+1]
	switch next.Type {
	case token.TLCurl:
		return parseDict(toks, pi, opts)
	case token.TLParen:
		if isShape(toks, *pi+1) {
			return parseStatement(toks, pi)
		}
		return parseListBlock(toks, pi, opts)
	}
	return parseStatement(toks, pi)
}

func parseDict(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	name := toks[*pi].String()
	*pi += 2
	items, err := parseEntries(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	if toks[*pi].Type != token.TRCurl {
		return nil, token.ExpectedErr("'}'", &toks[*pi])
	}
	*pi++
	return ir.NewDict(name, items...)
}

func parseStatement(toks []token.Token, pi *int) (*ir.Key, error) {
	nameTok := &toks[*pi]
	*pi++
	var vals []ir.Value
	for toks[*pi].Type != token.TSemi {
		v, err := parseValue(toks, pi, true)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	*pi++
	ir.NameLeaves(vals)
	return ir.NewKey(nameTok.String(), vals...)
}

// nameByPosition names values v0, v1, ... in order.
func nameByPosition(vals []ir.Value, start int) int {
	for _, v := range vals {
		v.SetName(fmt.Sprintf("v%d", start))
		start++
	}
	return start
}

func shapeErr(err error, tok *token.Token) error {
	l, c := tok.Pos.LineCol()
	return fmt.Errorf("%w at line %d, column %d", err, l, c)
}
