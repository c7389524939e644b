package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
)

// parseListBlock reads `name ( ... );`. Dictionaries inside make a node
// list; anything else makes a key holding a single value list whose
// values are renamed v0, v1, ...
func parseListBlock(toks []token.Token, pi *int, opts *parseOpts) (ir.Item, error) {
	nameTok := &toks[*pi]
	*pi += 2
	rows, nodes, err := parseRows(toks, pi, opts)
	if err != nil {
		return nil, err
	}
	if toks[*pi].Type != token.TRParen {
		return nil, token.ExpectedErr("')'", &toks[*pi])
	}
	*pi++
	if toks[*pi].Type != token.TSemi {
		return nil, token.ExpectedErr("';'", &toks[*pi])
	}
	*pi++
	name := nameTok.String()
	if len(nodes) != 0 {
		if len(rows) != 0 {
			return nil, token.NewSyntaxErr(nil, fmt.Sprintf("list %s mixes dictionaries and values", name), nameTok.Pos)
		}
		return ir.NewNodeList(name, nodes...)
	}
	i := 0
	for _, row := range rows {
		i = nameByPosition(row, i)
	}
	return ir.NewKey(name, ir.NewList(name, rows...))
}

// parseRows reads the contents of a list block up to the closing ')'.
func parseRows(toks []token.Token, pi *int, opts *parseOpts) ([][]ir.Value, []*ir.Node, error) {
	var (
		rows  [][]ir.Value
		nodes []*ir.Node
	)
	for {
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRParen, token.TEOF:
			return rows, nodes, nil
		case token.TSemi:
			return nil, nil, token.UnexpectedErr(tok)
		case token.TLParen:
			g, err := parseGroup(toks, pi)
			if err != nil {
				return nil, nil, err
			}
			rows = append(rows, []ir.Value{g})
			continue
		case token.TWord, token.TString:
			next := &toks[*pi+1]
			switch {
			case next.Type == token.TLCurl:
				n, err := parseDict(toks, pi, opts)
				if err != nil {
					return nil, nil, err
				}
				trackPos(n, tok.Pos, opts)
				nodes = addNode(nodes, n, opts)
				continue
			case tok.Type == token.TWord && next.Type == token.TLParen && isHex(toks, *pi+1):
				row, err := parseHex(toks, pi)
				if err != nil {
					return nil, nil, err
				}
				rows = append(rows, row)
				continue
			case tok.Type == token.TWord && next.Type.IsNumber() && toks[*pi+2].Type.IsNumber() && toks[*pi+3].Type == token.TLParen:
				row, err := parseEdge(toks, pi)
				if err != nil {
					return nil, nil, err
				}
				rows = append(rows, row)
				continue
			}
		}
		v, err := parseValue(toks, pi, true)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, []ir.Value{v})
	}
}

func addNode(nodes []*ir.Node, n *ir.Node, opts *parseOpts) []*ir.Node {
	for i := range nodes {
		if nodes[i].Name() == n.Name() {
			opts.logger.Debug("duplicate entry replaces earlier one", "name", n.Name())
			nodes[i] = n
			return nodes
		}
	}
	return append(nodes, n)
}

func isHex(toks []token.Token, i int) bool {
	n := numberRun(toks, i+1)
	return n == 8 && toks[i+1+n].Type == token.TRParen
}

// parseHex reads a block definition:
//
//	hex (0 1 2 3 4 5 6 7) [zone] (10 10 1) simpleGrading (1 1 1)
func parseHex(toks []token.Token, pi *int) ([]ir.Value, error) {
	row := []ir.Value{word(&toks[*pi])}
	*pi++
	faces, err := intGroup(toks, pi, 8)
	if err != nil {
		return nil, err
	}
	row = append(row, faces)
	if toks[*pi].Type == token.TWord && toks[*pi+1].Type == token.TLParen {
		row = append(row, word(&toks[*pi]))
		*pi++
	}
	res, err := intGroup(toks, pi, 3)
	if err != nil {
		return nil, err
	}
	row = append(row, res)
	gradTok := &toks[*pi]
	if gradTok.Type != token.TWord {
		return nil, token.ExpectedErr("grading", gradTok)
	}
	*pi++
	if !gradTok.IsCompound() {
		grading, err := parseGrading(toks, pi)
		if err != nil {
			return nil, err
		}
		return append(row, word(gradTok), grading), nil
	}
	// simpleGrading(1 1 1) arrives as one word
	i := bytes.IndexByte(gradTok.Bytes, '(')
	name := string(gradTok.Bytes[:i])
	sub, err := token.Tokenize(nil, gradTok.Bytes[i:])
	if err != nil {
		return nil, err
	}
	off := 0
	grading, err := parseGrading(sub, &off)
	if err != nil {
		return nil, err
	}
	if sub[off].Type != token.TEOF {
		return nil, token.UnexpectedErr(&sub[off])
	}
	return append(row, ir.Word(name, name), grading), nil
}

// parseEdge reads an edge definition such as `arc 1 5 (1.1 0 0)`.
func parseEdge(toks []token.Token, pi *int) ([]ir.Value, error) {
	row := []ir.Value{word(&toks[*pi])}
	for i := 1; i <= 2; i++ {
		v, err := number(&toks[*pi+i])
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}
	*pi += 3
	points, err := parseGrading(toks, pi)
	if err != nil {
		return nil, err
	}
	return append(row, points), nil
}

// parseGrading reads either a single group, (1 2 3), or a group of
// groups, ((0.2 0.3 4) (0.6 0.4 1)), which becomes one element per
// entry.
func parseGrading(toks []token.Token, pi *int) (*ir.List, error) {
	if toks[*pi].Type != token.TLParen {
		return nil, token.ExpectedErr("'('", &toks[*pi])
	}
	if toks[*pi+1].Type != token.TLParen {
		return parseGroup(toks, pi)
	}
	*pi++
	l := ir.NewList("")
	i := 0
	for toks[*pi].Type != token.TRParen {
		var (
			v   ir.Value
			err error
		)
		if toks[*pi].Type == token.TLParen {
			v, err = parseGroup(toks, pi)
		} else {
			v, err = parseValue(toks, pi, true)
		}
		if err != nil {
			return nil, err
		}
		v.SetName(fmt.Sprintf("v%d", i))
		i++
		if err := l.AppendElem(v); err != nil {
			return nil, err
		}
	}
	*pi++
	return l, nil
}

// intGroup reads a group of exactly n integers.
func intGroup(toks []token.Token, pi *int, n int) (*ir.List, error) {
	if toks[*pi].Type != token.TLParen {
		return nil, token.ExpectedErr("'('", &toks[*pi])
	}
	*pi++
	vals := make([]ir.Value, 0, n)
	for range n {
		tok := &toks[*pi]
		if tok.Type != token.TInteger {
			return nil, token.ExpectedErr("integer", tok)
		}
		v, err := number(tok)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		*pi++
	}
	if toks[*pi].Type != token.TRParen {
		return nil, token.ExpectedErr("')'", &toks[*pi])
	}
	*pi++
	nameByPosition(vals, 0)
	return ir.NewList("", vals), nil
}

func word(tok *token.Token) *ir.Enum {
	return ir.Word(tok.String(), tok.String())
}
