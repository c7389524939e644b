package parse

import (
	"fmt"

	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
)

// parseValue reads one value of a statement. With shapes set, a group
// of exactly 3 or 9 numbers is a vector or a tensor.
func parseValue(toks []token.Token, pi *int, shapes bool) (ir.Value, error) {
	tok := &toks[*pi]
	switch tok.Type {
	case token.TWord:
		*pi++
		return ir.Word(tok.String(), tok.String()), nil
	case token.TString:
		*pi++
		return ir.NewString(tok.String(), tok.String()), nil
	case token.TDollar:
		if len(tok.Bytes) == 1 {
			return nil, token.ExpectedErr("macro name", &toks[*pi+1])
		}
		*pi++
		w := string(tok.Bytes)
		return ir.Word(w, w), nil
	case token.TInteger, token.TFloat:
		*pi++
		return number(tok)
	case token.TLSquare:
		return parseDimSet(toks, pi)
	case token.TLParen:
		if shapes && isShape(toks, *pi) {
			return parseShape(toks, pi)
		}
		return parseGroup(toks, pi)
	}
	return nil, token.UnexpectedErr(tok)
}

func number(tok *token.Token) (ir.Value, error) {
	if tok.Type == token.TInteger {
		i, err := tok.Int()
		if err != nil {
			return nil, token.NewSyntaxErr(err, fmt.Sprintf("bad integer %q", tok.String()), tok.Pos)
		}
		return ir.IntLiteral("", i), nil
	}
	f, err := tok.Float()
	if err != nil {
		return nil, token.NewSyntaxErr(err, fmt.Sprintf("bad float %q", tok.String()), tok.Pos)
	}
	return ir.FloatLiteral("", f), nil
}

// numberRun counts the number tokens starting at i.
func numberRun(toks []token.Token, i int) int {
	n := 0
	for i+n < len(toks) && toks[i+n].Type.IsNumber() {
		n++
	}
	return n
}

// isShape reports whether the '(' at i opens exactly 3 or 9 numbers.
func isShape(toks []token.Token, i int) bool {
	n := numberRun(toks, i+1)
	return (n == 3 || n == 9) && toks[i+1+n].Type == token.TRParen
}

func parseShape(toks []token.Token, pi *int) (ir.Value, error) {
	open := &toks[*pi]
	n := numberRun(toks, *pi+1)
	comps := make([]float64, n)
	for i := range comps {
		f, err := toks[*pi+1+i].Float()
		if err != nil {
			return nil, token.NewSyntaxErr(err, "bad component", toks[*pi+1+i].Pos)
		}
		comps[i] = f
	}
	*pi += n + 2
	var (
		v   ir.Value
		err error
	)
	if n == 3 {
		v, err = ir.VectorOf("", comps...)
	} else {
		v, err = ir.TensorOf("", comps...)
	}
	if err != nil {
		return nil, shapeErr(err, open)
	}
	return v, nil
}

func parseDimSet(toks []token.Token, pi *int) (ir.Value, error) {
	open := &toks[*pi]
	*pi++
	var exps []int64
	for toks[*pi].Type != token.TRSquare {
		tok := &toks[*pi]
		switch tok.Type {
		case token.TInteger:
			e, err := tok.Int()
			if err != nil {
				return nil, token.NewSyntaxErr(err, fmt.Sprintf("bad integer %q", tok.String()), tok.Pos)
			}
			exps = append(exps, e)
		case token.TFloat:
			return nil, shapeErr(fmt.Errorf("%w: dimension set exponent %s is not an integer", ir.ErrShape, tok.String()), tok)
		default:
			return nil, token.UnexpectedErr(tok)
		}
		*pi++
	}
	*pi++
	if len(exps) != 7 {
		return nil, shapeErr(fmt.Errorf("%w: dimension set needs 7 components, got %d", ir.ErrShape, len(exps)), open)
	}
	return ir.NewDimSet("", exps...)
}

// parseGroup reads a parenthesised run of values as a list with a
// single element.
func parseGroup(toks []token.Token, pi *int) (*ir.List, error) {
	*pi++
	var vals []ir.Value
	for toks[*pi].Type != token.TRParen {
		v, err := parseValue(toks, pi, true)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	*pi++
	if len(vals) == 0 {
		return ir.NewList(""), nil
	}
	nameByPosition(vals, 0)
	return ir.NewList("", vals), nil
}
