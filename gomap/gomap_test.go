package gomap

import (
	"testing"

	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/parse"
	"github.com/stretchr/testify/require"
)

type solver struct {
	Solver    string  `yaml:"solver"`
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"maxIter"`
}

type patch struct {
	Type  string  `yaml:"type"`
	Faces [][]int `yaml:"faces"`
}

type props struct {
	Nu         []any             `yaml:"nu"`
	Solvers    map[string]solver `yaml:"solvers"`
	Momentum   bool              `yaml:"momentumPredictor"`
	Boundary   map[string]patch  `yaml:"boundary"`
	Velocity   []float64         `yaml:"U"`
	Weights    []int             `yaml:"weights"`
	Unassigned string            `yaml:"unassigned"`
}

const propsText = `
nu [0 2 -1 0 0 0 0] 0.01;
solvers { p { solver PCG; tolerance 1e-06; maxIter 100; } }
momentumPredictor on;
boundary ( wall { type wall; faces ( (0 1 2 3) ); } );
U (1 0 0);
weights ( 1 2 );
`

func TestLoad(t *testing.T) {
	var p props
	require.NoError(t, Load([]byte(propsText), &p))
	require.Len(t, p.Nu, 2)
	require.Equal(t, 0.01, p.Nu[1])
	require.Equal(t, solver{Solver: "PCG", Tolerance: 1e-06, MaxIter: 100}, p.Solvers["p"])
	require.True(t, p.Momentum)
	require.Equal(t, patch{Type: "wall", Faces: [][]int{{0, 1, 2, 3}}}, p.Boundary["wall"])
	require.Equal(t, []float64{1, 0, 0}, p.Velocity)
	require.Equal(t, []int{1, 2}, p.Weights)
	require.Empty(t, p.Unassigned)
}

func TestToAny(t *testing.T) {
	root, err := parse.Parse([]byte(`a 1; b x y; c; d off;`))
	require.NoError(t, err)
	require.Equal(t, 1, ToAny(root.Key("a")))
	require.Equal(t, []any{"x", "y"}, ToAny(root.Key("b")))
	require.Nil(t, ToAny(root.Key("c")))
	require.Equal(t, false, ToAny(root.Key("d")))
}

func TestToAnyGroups(t *testing.T) {
	root, err := parse.Parse([]byte(`
faces ( (0 1 2 3) );
rows ( (0 1) (2 3) );
g x (1 2);
T (1 0 0 0 1 0 0 0 1);
`))
	require.NoError(t, err)
	require.Equal(t, []any{[]any{0, 1, 2, 3}}, ToAny(root.Key("faces")))
	require.Equal(t, []any{[]any{0, 1}, []any{2, 3}}, ToAny(root.Key("rows")))
	require.Equal(t, []any{"x", []any{1, 2}}, ToAny(root.Key("g")))
	require.Equal(t, []any{1.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0}, ToAny(root.Key("T")))

	var faces struct {
		Faces [][]int `yaml:"faces"`
	}
	require.NoError(t, Decode(root, &faces))
	require.Equal(t, [][]int{{0, 1, 2, 3}}, faces.Faces)
}

func TestFromGo(t *testing.T) {
	in := struct {
		Solver    string  `yaml:"solver"`
		Tolerance float64 `yaml:"tolerance"`
		NSweeps   int     `yaml:"nSweeps"`
		Sub       solver  `yaml:"sub"`
		Vals      []int   `yaml:"vals"`
	}{
		Solver:    "PCG",
		Tolerance: 0.001,
		NSweeps:   2,
		Sub:       solver{Solver: "GAMG", Tolerance: 0.5, MaxIter: 3},
		Vals:      []int{4, 5},
	}
	n, err := FromGo("fvSolution", in)
	require.NoError(t, err)
	require.Equal(t, "fvSolution", n.Name())
	require.Equal(t, []string{"solver", "tolerance", "nSweeps", "sub", "vals"}, names(n.Items()))
	require.Equal(t, ir.FloatKind, n.Key("tolerance").First().Kind())
	require.Equal(t, "GAMG", ir.Get(n, "sub", "solver").(*ir.Key).First().String())
	require.Equal(t, 2, n.Key("vals").First().(*ir.List).Len())

	var back solver
	require.NoError(t, Decode(n.Child("sub"), &back))
	require.Equal(t, in.Sub, back)
}

func names(items []ir.Item) []string {
	res := make([]string, len(items))
	for i, it := range items {
		res[i] = it.Name()
	}
	return res
}
