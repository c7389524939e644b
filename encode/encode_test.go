package encode_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/parse"
)

var testFiles = []string{"blockMeshDict", "fvSolution", "transportProperties"}

func mustParse(t *testing.T, in string, opts ...parse.ParseOption) *ir.Node {
	t.Helper()
	root, err := parse.Parse([]byte(in), opts...)
	require.NoError(t, err)
	return root
}

func encodeString(t *testing.T, root *ir.Node, opts ...encode.EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	require.NoError(t, encode.Encode(root, buf, opts...))
	return buf.String()
}

func TestEncodeText(t *testing.T) {
	root := mustParse(t, `
ddtSchemes { default Euler; }
divSchemes { default none; div(phi,U) Gauss linear; }
nu [0 2 -1 0 0 0 0] 0.01;
aVeryLongKeywordName 1;
momentumPredictor;
"(U|k)" { title "a b"; }
`)
	expected := `ddtSchemes
{
    default         Euler;
}

divSchemes
{
    default         none;
    div(phi,U)      Gauss linear;
}

nu              [0 2 -1 0 0 0 0] 0.01;

aVeryLongKeywordName 1;

momentumPredictor;

"(U|k)"
{
    title           "a b";
}
`
	got := encodeString(t, root)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("encode mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeLists(t *testing.T) {
	root := mustParse(t, `
outer
{
    vertices ( (0 0 0) (1 0 0) );
    boundary ( wall { type wall; } );
    empty ( );
}
`)
	expected := `outer
{
    vertices
    (
        (0 0 0)
        (1 0 0)
    );

    boundary
    (
        wall
        {
            type            wall;
        }
    );

    empty
    (
    );
}
`
	got := encodeString(t, root)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("encode mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeColumn(t *testing.T) {
	root := mustParse(t, `a 1; abc 2;`)
	got := encodeString(t, root, encode.EncodeColumn(4), encode.EncodeIndent(2))
	require.Equal(t, "a   1;\n\nabc 2;\n", got)
}

func TestEncodeYAML(t *testing.T) {
	root := mustParse(t, `
nu [0 2 -1 0 0 0 0] 0.01;
solvers { p { solver PCG; } }
"(U|k)" 1;
true 2;
points ( (0 0 0) );
weights ( 1 2.5 );
empty { }
`)
	expected := `nu: "[0 2 -1 0 0 0 0] 0.01"
solvers:
  p:
    solver: "PCG"
"(U|k)": "1"
"true": "2"
points:
  - "(0 0 0)"
weights:
  - 1
  - 2.5
empty: {}
`
	got := encodeString(t, root, encode.EncodeFormat(format.YAMLFormat))
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("encode mismatch (-want +got):\n%s", diff)
	}
	empty, err := ir.NewDict("x")
	require.NoError(t, err)
	require.Equal(t, "{}\n", encodeString(t, empty, encode.EncodeFormat(format.YAMLFormat)))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range format.AllFormats() {
		for _, name := range testFiles {
			t.Run(f.String()+"/"+name, func(t *testing.T) {
				root, err := parse.ParseFile(filepath.Join("testdata", name))
				require.NoError(t, err)
				out := encodeString(t, root, encode.EncodeFormat(f))
				back, err := parse.Parse([]byte(out), parse.ParseFormat(f), parse.ParseName(name))
				require.NoError(t, err, out)
				if !ir.EqualItem(root, back) {
					t.Errorf("round trip changed %s:\n%s\nvs\n%s", name,
						encodeString(t, root), encodeString(t, back))
				}
				again := encodeString(t, back, encode.EncodeFormat(f))
				require.Equal(t, out, again)
			})
		}
	}
}

func TestYAMLIsValid(t *testing.T) {
	for _, name := range testFiles {
		root, err := parse.ParseFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		out := encodeString(t, root, encode.EncodeFormat(format.YAMLFormat))
		var doc yaml.MapSlice
		require.NoError(t, yaml.UnmarshalWithOptions([]byte(out), &doc, yaml.UseOrderedMap()), out)
		require.Equal(t, root.Len(), len(doc))
	}
}

func TestEncodeProgrammatic(t *testing.T) {
	nu, err := ir.NewFloat("v0", 0.01, 0, 1)
	require.NoError(t, err)
	k, err := ir.NewKey("nu", nu)
	require.NoError(t, err)
	root, err := ir.NewNode("transportProperties", k)
	require.NoError(t, err)

	out := encodeString(t, root)
	require.Equal(t, "nu              0.01;\n", out)
	back := mustParse(t, out, parse.ParseName("transportProperties"))
	require.True(t, ir.EqualItem(root, back))
	require.Equal(t, 0.01, back.Key("nu").First().(*ir.Float).Value())
}

func TestEncodeErrors(t *testing.T) {
	k, err := ir.NewKey("title", ir.NewString("v0", `say "hi"`))
	require.NoError(t, err)
	root, err := ir.NewNode("root", k)
	require.NoError(t, err)
	err = encode.Encode(root, bytes.NewBuffer(nil))
	require.ErrorIs(t, err, encode.ErrEncoding)

	k, err = ir.NewKey(`a"b`, ir.IntLiteral("v0", 1))
	require.NoError(t, err)
	root, err = ir.NewNode("root", k)
	require.NoError(t, err)
	err = encode.Encode(root, bytes.NewBuffer(nil))
	require.ErrorIs(t, err, encode.ErrEncoding)
}

func TestEncodeItem(t *testing.T) {
	root := mustParse(t, `solvers { p { solver PCG; } }`)
	p := ir.Get(root, "solvers", "p")
	buf := bytes.NewBuffer(nil)
	require.NoError(t, encode.EncodeItem(p, buf))
	require.Equal(t, "p\n{\n    solver          PCG;\n}\n", buf.String())
}

func TestTree(t *testing.T) {
	root := mustParse(t, `a 1; b { c 2; d x y; } l ( n { } );`)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, encode.Tree(buf, root))
	expected := `root
├── a : 1
├── b
│   ├── c : 2
│   └── d : x, y
└── l []
    └── n
`
	require.Equal(t, expected, buf.String())
}

func TestWriteTo(t *testing.T) {
	dir := t.TempDir()
	root, err := parse.ParseFile(filepath.Join("testdata", "fvSolution"))
	require.NoError(t, err)
	for _, f := range format.AllFormats() {
		p, err := encode.WriteTo(root, dir, encode.EncodeFormat(f))
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "fvSolution"+f.Suffix()), p)
		back, err := parse.ParseFile(p, parse.ParseName("fvSolution"))
		require.NoError(t, err)
		require.True(t, ir.EqualItem(root, back))
	}
	_, err = encode.WriteTo(root, filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	root := mustParse(t, `a 1; b { c "x"; }`)
	plain := encode.MustString(root)
	colored := encode.MustString(root, encode.EncodeColors(encode.NewColors()))
	require.NotEqual(t, plain, colored)
	require.Contains(t, colored, "\x1b[")
	require.True(t, strings.Contains(colored, "1"))
}
