package foamdict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/libdiff"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	root, err := Parse("outer { inner 5; }", format.FoamFormat)
	require.NoError(t, err)
	require.Equal(t, "root", root.Name())
	k, ok := Get(root, "outer", "inner").(*ir.Key)
	require.True(t, ok)
	require.Equal(t, int64(5), k.First().(*ir.Int).Value())
	require.Nil(t, Get(root, "outer", "missing"))
	require.Nil(t, Get(root, "outer", "inner", "deeper"))
	require.Nil(t, Get(nil, "outer"))
	require.Nil(t, Get(nil))
}

func TestWriteAndParsePath(t *testing.T) {
	nu, err := ir.NewFloat("v0", 0.01, 0, 1)
	require.NoError(t, err)
	k, err := ir.NewKey("nu", nu)
	require.NoError(t, err)
	root, err := ir.NewNode("transportProperties", k)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, f := range format.AllFormats() {
		p, err := Write(root, dir, f)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "transportProperties"+f.Suffix()), p)
		back, err := Parse(p, f)
		require.NoError(t, err)
		require.Equal(t, "transportProperties", back.Name())
		require.True(t, ir.EqualItem(root, back))
	}

	p := filepath.Join(dir, "props")
	got, err := Write(root, p, format.FoamFormat)
	require.NoError(t, err)
	require.Equal(t, p, got)
	d, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "nu              0.01;\n", string(d))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("nu [0 2 -1 0 0 0] 0.01;", format.FoamFormat)
	require.ErrorIs(t, err, ir.ErrShape)
	root, err := ir.NewDict("x")
	require.NoError(t, err)
	_, err = Write(root, filepath.Join(t.TempDir(), "no", "such"), format.FoamFormat)
	require.Error(t, err)
}

func TestEnumViolation(t *testing.T) {
	_, err := ir.NewEnum("scheme", []string{"a", "b"}, "c")
	require.ErrorIs(t, err, ir.ErrEnum)
}

func TestDiff(t *testing.T) {
	a, err := Parse("a 1; b 2;", format.FoamFormat)
	require.NoError(t, err)
	b, err := Parse("a: 1\nb: 3\n", format.YAMLFormat)
	require.NoError(t, err)
	lines, err := Diff(a, b)
	require.NoError(t, err)
	require.True(t, libdiff.Changed(lines))
	require.Equal(t, libdiff.Line{Op: libdiff.Delete, Text: "b               2;"}, lines[2])
}
