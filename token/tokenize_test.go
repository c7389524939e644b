package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type tokTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in:    "application icoFoam;",
			types: []TokenType{TWord, TWord, TSemi},
			texts: []string{"application", "icoFoam", ";"},
		},
		{
			in:    "div(phi,U) Gauss linear;",
			types: []TokenType{TWord, TWord, TWord, TSemi},
			texts: []string{"div(phi,U)", "Gauss", "linear", ";"},
		},
		{
			in:    "nu [0 2 -1 0 0 0 0] 0.01;",
			types: []TokenType{TWord, TLSquare, TInteger, TInteger, TInteger, TInteger, TInteger, TInteger, TInteger, TRSquare, TFloat, TSemi},
		},
		{
			in:    "x 1e-05, 2E3 -4;",
			types: []TokenType{TWord, TFloat, TFloat, TInteger, TSemi},
			texts: []string{"x", "1e-05", "2E3", "-4", ";"},
		},
		{
			in:    "// comment\na /* multi\nline */ b;",
			types: []TokenType{TWord, TWord, TSemi},
			texts: []string{"a", "b", ";"},
		},
		{
			in:    `name "  spaced value " ;`,
			types: []TokenType{TWord, TString, TSemi},
			texts: []string{"name", "spaced value", ";"},
		},
		{
			in:    "a { b $c; }",
			types: []TokenType{TWord, TLCurl, TWord, TDollar, TSemi, TRCurl},
			texts: []string{"a", "{", "b", "$c", ";", "}"},
		},
		{
			in:    "x $:a.b $ 1;",
			types: []TokenType{TWord, TDollar, TDollar, TInteger, TSemi},
			texts: []string{"x", "$:a.b", "$", "1", ";"},
		},
		{
			in:    "laplacian((1|A(U)),p) x;",
			types: []TokenType{TWord, TWord, TSemi},
			texts: []string{"laplacian((1|A(U)),p)", "x", ";"},
		},
		{
			in:    "hex (0 1) simpleGrading(1 1 1)",
			types: []TokenType{TWord, TLParen, TInteger, TInteger, TRParen, TWord},
		},
	}
	for i := range tests {
		tc := &tests[i]
		toks, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		require.Equal(t, TEOF, toks[len(toks)-1].Type, tc.in)
		toks = toks[:len(toks)-1]
		types := make([]TokenType, len(toks))
		for j := range toks {
			types[j] = toks[j].Type
		}
		require.Equal(t, tc.types, types, tc.in)
		if tc.texts == nil {
			continue
		}
		texts := make([]string, len(toks))
		for j := range toks {
			texts[j] = toks[j].String()
		}
		require.Equal(t, tc.texts, texts, tc.in)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in        string
		err       error
		line, col int
	}{
		{"a b;\nc # d;", ErrIllegalChar, 2, 3},
		{"a \"open", ErrUnterminated, 1, 3},
		{"/* open", ErrUnterminated, 1, 1},
		{"div(phi,U x", ErrUnbalanced, 1, 1},
		{"f(a=b) x;", ErrIllegalChar, 1, 4},
	}
	for _, tc := range tests {
		_, err := Tokenize(nil, []byte(tc.in))
		if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
		if !errors.Is(err, ErrSyntax) || !errors.Is(err, tc.err) {
			t.Fatalf("%q: wrong error %v", tc.in, err)
		}
		var se *SyntaxError
		require.True(t, errors.As(err, &se))
		require.Equal(t, tc.line, se.Line, tc.in)
		require.Equal(t, tc.col, se.Col, tc.in)
	}
}

func TestLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\n\nef"))
	for off, want := range map[int][2]int{
		0: {1, 1},
		1: {1, 2},
		2: {1, 3},
		3: {2, 1},
		7: {4, 1},
		8: {4, 2},
	} {
		l, c := doc.LineCol(off)
		if l != want[0] || c != want[1] {
			t.Errorf("offset %d: got %d:%d want %d:%d", off, l, c, want[0], want[1])
		}
	}
}
