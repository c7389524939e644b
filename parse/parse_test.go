package parse

import (
	"errors"
	"testing"

	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/token"
	"github.com/stretchr/testify/require"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `// only a comment`},
		{in: `foo 1 2 3;`},
		{in: `outer { inner 5; }`},
		{in: `a; b { }`},
		{in: `div(phi,U) Gauss linear;`},
		{in: `"(U|k)" { solver PCG; }`},
		{in: `internalField $initial;`},
		{in: `U uniform (1 0 0);`},
		{in: `T (1 0 0 0 1 0 0 0 1);`},
		{in: `values (1 (2 3) ((4 5 6)));`},
		{in: `faces ( (0 1 2 3) );`},
		{in: `patches ( a b "c d" );`},
		{in: `boundary ( wall { type wall; } inlet { type patch; } );`},
		{in: `edges ( );`},
		{in: `a 1, 2, 3;`},
		{in: `x 1e-3; y -2; z 3E+4;`},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
		}
	}
}

func TestParseErr(t *testing.T) {
	pts := []parseTest{
		{in: `foo 1`, e: token.ErrEOF},
		{in: `outer { inner 5; `, e: token.ErrEOF},
		{in: `foo 1 }`, e: token.ErrUnexpected},
		{in: `; a 1;`, e: token.ErrUnexpected},
		{in: `nu [0 2 -1 0 0 0] 0.01;`, e: ir.ErrShape},
		{in: `nu [0 2 -1 0 0.5 0 0] 0.01;`, e: ir.ErrShape},
		{in: `l ( a; );`, e: token.ErrUnexpected},
		{in: `l ( a { } (1 2) );`, e: token.ErrSyntax},
		{in: `blocks ( hex (0 1 2 3 4 5 6 7) (1 1 1) );`, e: token.ErrSyntax},
		{in: `blocks ( hex (0 1 2 3 4 5 6 7.5) (1 1 1) simpleGrading (1 1 1) );`, e: token.ErrUnexpected},
		{in: `a # b;`, e: token.ErrIllegalChar},
		{in: `x $ 1;`, e: token.ErrUnexpected},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, expected %v", pt.in, err, pt.e)
		}
	}
}

func TestStatementIntegers(t *testing.T) {
	root, err := Parse([]byte(`foo 1 2 3;`))
	require.NoError(t, err)
	require.Equal(t, "root", root.Name())
	k := root.Key("foo")
	require.NotNil(t, k)
	vals := k.Values()
	require.Len(t, vals, 3)
	for i, v := range vals {
		iv, ok := v.(*ir.Int)
		require.True(t, ok, "leaf %d is %T", i, v)
		require.Equal(t, int64(i+1), iv.Value())
	}
	require.Equal(t, []string{"v0", "v1", "v2"}, k.Names())
}

func TestNestedDict(t *testing.T) {
	root, err := Parse([]byte(`outer { inner 5; }`))
	require.NoError(t, err)
	require.Equal(t, 1, root.Len())
	outer := root.Child("outer")
	require.NotNil(t, outer)
	require.Equal(t, ir.Item(root), outer.Parent())
	inner := outer.Key("inner")
	require.NotNil(t, inner)
	require.Equal(t, int64(5), inner.First().(*ir.Int).Value())
}

func TestDuplicateReplacesInPlace(t *testing.T) {
	root, err := Parse([]byte(`a 1; b 0; a 2;`))
	require.NoError(t, err)
	require.Equal(t, 2, root.Len())
	items := root.Items()
	require.Equal(t, "a", items[0].Name())
	require.Equal(t, "b", items[1].Name())
	a := root.Key("a")
	require.Equal(t, 1, a.Len())
	require.Equal(t, int64(2), a.First().(*ir.Int).Value())

	// a dictionary replacing a key keeps the position too
	root, err = Parse([]byte(`x 1; y 2; x { z 3; }`))
	require.NoError(t, err)
	require.NotNil(t, root.Child("x"))
	require.Equal(t, "x", root.Items()[0].Name())
}

func TestDimSetAndFloat(t *testing.T) {
	root, err := Parse([]byte(`nu [0 2 -1 0 0 0 0] 0.01;`))
	require.NoError(t, err)
	vals := root.Key("nu").Values()
	require.Len(t, vals, 2)
	ds, ok := vals[0].(*ir.DimSet)
	require.True(t, ok)
	require.Equal(t, [7]int64{0, 2, -1, 0, 0, 0, 0}, ds.Components())
	f, ok := vals[1].(*ir.Float)
	require.True(t, ok)
	require.Equal(t, 0.01, f.Value())

	_, err = Parse([]byte(`nu [0 2 -1 0 0 0] 0.01;`))
	require.ErrorIs(t, err, ir.ErrShape)
}

func TestNumberTyping(t *testing.T) {
	root, err := Parse([]byte(`a 1 1.0 1e3 -2 -2.5E-1 100000000;`))
	require.NoError(t, err)
	kinds := []ir.Kind{}
	for _, v := range root.Key("a").Values() {
		kinds = append(kinds, v.Kind())
	}
	require.Equal(t, []ir.Kind{ir.IntKind, ir.FloatKind, ir.FloatKind, ir.IntKind, ir.FloatKind, ir.IntKind}, kinds)
	big := root.Key("a").Values()[5].(*ir.Int)
	require.Equal(t, int64(100000000), big.Max())
	neg := root.Key("a").Values()[3].(*ir.Int)
	require.Equal(t, int64(-2), neg.Min())
}

func TestStatementShapes(t *testing.T) {
	root, err := Parse([]byte(`U uniform (1 0 0); T (1 0 0 0 1 0 0 0 1); g x (1 2);`))
	require.NoError(t, err)
	u := root.Key("U")
	require.Equal(t, []string{"uniform", "v1"}, u.Names())
	v, ok := u.Values()[1].(*ir.Vector)
	require.True(t, ok)
	require.Equal(t, [3]float64{1, 0, 0}, v.Components())
	_, ok = root.Key("T").First().(*ir.Tensor)
	require.True(t, ok)
	l, ok := root.Key("g").Values()[1].(*ir.List)
	require.True(t, ok)
	require.Equal(t, 1, l.Len())
	require.Equal(t, 2, l.Size())
}

func TestLeafNaming(t *testing.T) {
	root, err := Parse([]byte(`k Gauss linear 1 "quoted text" Gauss $m;`))
	require.NoError(t, err)
	require.Equal(t, []string{"Gauss", "linear", "v2", "quoted text", "v4", "$m"}, root.Key("k").Names())
	s, ok := root.Key("k").Values()[3].(*ir.String)
	require.True(t, ok)
	require.Equal(t, "quoted text", s.Value())
}

func TestListBlocks(t *testing.T) {
	in := `
vertices
(
    (0 0 0)
    (1 0 0.1)
);
blocks
(
    hex (0 1 2 3 4 5 6 7) (20 20 1) simpleGrading (1 1 1)
    hex (0 1 2 3 4 5 6 7) zone (2 2 2) simpleGrading(1 2 ((0.2 0.3 4) (0.6 0.4 1)))
);
edges
(
    arc 1 5 (1.1 0 0)
    spline 2 6 ((1 1 0) (1.1 1.1 0))
);
boundary
(
    movingWall
    {
        type wall;
        faces ( (3 7 6 2) );
    }
    fixedWalls { type wall; }
);
empty ( );
`
	root, err := Parse([]byte(in))
	require.NoError(t, err)

	vl := root.Key("vertices").First().(*ir.List)
	require.Equal(t, "vertices", vl.Name())
	require.Equal(t, 2, vl.Len())
	row := vl.Elem(1)
	require.Len(t, row, 1)
	require.Equal(t, "v1", row[0].Name())
	require.Equal(t, "(1 0 0.1)", row[0].String())

	bl := root.Key("blocks").First().(*ir.List)
	require.Equal(t, 2, bl.Len())
	hex := bl.Elem(0)
	require.Len(t, hex, 5)
	require.Equal(t, "hex", hex[0].String())
	require.Equal(t, []string{"v0", "v1", "v2", "v3", "v4"}, []string{hex[0].Name(), hex[1].Name(), hex[2].Name(), hex[3].Name(), hex[4].Name()})
	require.Equal(t, 8, hex[1].(*ir.List).Size())
	require.Equal(t, "simpleGrading", hex[3].String())
	zoned := bl.Elem(1)
	require.Len(t, zoned, 6)
	require.Equal(t, "zone", zoned[2].String())
	require.Equal(t, "simpleGrading", zoned[4].String())
	require.Equal(t, "v5", zoned[0].Name())
	grading := zoned[5].(*ir.List)
	require.Equal(t, "(1 2 ((0.2 0.3 4) (0.6 0.4 1)))", grading.String())

	el := root.Key("edges").First().(*ir.List)
	arc := el.Elem(0)
	require.Len(t, arc, 4)
	require.Equal(t, ir.IntKind, arc[1].Kind())
	spline := el.Elem(1)[3].(*ir.List)
	require.Equal(t, 2, spline.Len())

	bnd := root.List("boundary")
	require.NotNil(t, bnd)
	require.True(t, bnd.IsNodeList())
	require.Len(t, bnd.Nodes(), 2)
	mw := bnd.Node("movingWall")
	require.Equal(t, ir.Item(bnd), mw.Parent())
	require.Equal(t, "(3 7 6 2)", mw.Key("faces").First().(*ir.List).At(0, 0).String())

	empty := root.Key("empty").First().(*ir.List)
	require.Equal(t, 0, empty.Len())
}

func TestBareValueList(t *testing.T) {
	root, err := Parse([]byte(`patches ( inlet outlet "side wall" 3 );`))
	require.NoError(t, err)
	l := root.Key("patches").First().(*ir.List)
	require.Equal(t, 4, l.Len())
	require.Equal(t, ir.StringKind, l.At(2, 0).Kind())
	require.Equal(t, "v3", l.At(3, 0).Name())
}

func TestPositions(t *testing.T) {
	pos := map[ir.Item]*token.Pos{}
	root, err := Parse([]byte("a 1;\nb\n{\n    c 2;\n}\n"), ParsePositions(pos))
	require.NoError(t, err)
	l, c := pos[root.Child("b")].LineCol()
	require.Equal(t, 2, l)
	require.Equal(t, 1, c)
	l, c = pos[root.Child("b").Key("c")].LineCol()
	require.Equal(t, 4, l)
	require.Equal(t, 5, c)
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse([]byte("a 1;\nb { c 2; ] }"))
	var se *token.SyntaxError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Line)
	require.Equal(t, 10, se.Col)
}
