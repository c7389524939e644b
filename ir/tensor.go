package ir

import (
	"fmt"
)

// Tensor is a 3x3 float value, written as its nine components in row
// order.
type Tensor struct {
	leaf
	c [3][3]float64
}

func NewTensor(name string, rows [3][3]float64) *Tensor {
	return &Tensor{leaf: leaf{name: name}, c: rows}
}

// TensorOf creates a tensor from exactly nine components in row order.
func TensorOf(name string, comps ...float64) (*Tensor, error) {
	if len(comps) != 9 {
		return nil, fmt.Errorf("%w: tensor %s needs 9 components, got %d", ErrShape, name, len(comps))
	}
	t := &Tensor{leaf: leaf{name: name}}
	for i, c := range comps {
		t.c[i/3][i%3] = c
	}
	return t, nil
}

func (t *Tensor) Kind() Kind { return TensorKind }

func (t *Tensor) XX() float64 { return t.c[0][0] }
func (t *Tensor) XY() float64 { return t.c[0][1] }
func (t *Tensor) XZ() float64 { return t.c[0][2] }
func (t *Tensor) YX() float64 { return t.c[1][0] }
func (t *Tensor) YY() float64 { return t.c[1][1] }
func (t *Tensor) YZ() float64 { return t.c[1][2] }
func (t *Tensor) ZX() float64 { return t.c[2][0] }
func (t *Tensor) ZY() float64 { return t.c[2][1] }
func (t *Tensor) ZZ() float64 { return t.c[2][2] }

func (t *Tensor) Components() [9]float64 {
	var res [9]float64
	for i := range res {
		res[i] = t.c[i/3][i%3]
	}
	return res
}

func (t *Tensor) Matrix() [3][3]float64 { return t.c }

// Row returns row r, counting from 1.
func (t *Tensor) Row(r int) (*Vector, error) {
	if r < 1 || r > 3 {
		return nil, fmt.Errorf("%w: row %d of tensor %s", ErrShape, r, t.name)
	}
	row := t.c[r-1]
	return NewVector(t.name+"_row", row[0], row[1], row[2]), nil
}

// Col returns column c, counting from 1.
func (t *Tensor) Col(c int) (*Vector, error) {
	if c < 1 || c > 3 {
		return nil, fmt.Errorf("%w: column %d of tensor %s", ErrShape, c, t.name)
	}
	return NewVector(t.name+"_col", t.c[0][c-1], t.c[1][c-1], t.c[2][c-1]), nil
}

func (t *Tensor) Diag() *Vector {
	return NewVector(t.name+"_diag", t.c[0][0], t.c[1][1], t.c[2][2])
}

func (t *Tensor) T() *Tensor {
	res := &Tensor{leaf: leaf{name: t.name + "_T"}}
	for i := range 3 {
		for j := range 3 {
			res.c[j][i] = t.c[i][j]
		}
	}
	return res
}

func (t *Tensor) Det() float64 {
	c := &t.c
	return c[0][0]*(c[1][1]*c[2][2]-c[1][2]*c[2][1]) -
		c[0][1]*(c[1][0]*c[2][2]-c[1][2]*c[2][0]) +
		c[0][2]*(c[1][0]*c[2][1]-c[1][1]*c[2][0])
}

func (t *Tensor) Inv() (*Tensor, error) {
	det := t.Det()
	if det == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSingular, t.name)
	}
	c := &t.c
	res := &Tensor{leaf: leaf{name: t.name + "_inv"}}
	res.c = [3][3]float64{
		{
			(c[1][1]*c[2][2] - c[1][2]*c[2][1]) / det,
			(c[0][2]*c[2][1] - c[0][1]*c[2][2]) / det,
			(c[0][1]*c[1][2] - c[0][2]*c[1][1]) / det,
		},
		{
			(c[1][2]*c[2][0] - c[1][0]*c[2][2]) / det,
			(c[0][0]*c[2][2] - c[0][2]*c[2][0]) / det,
			(c[0][2]*c[1][0] - c[0][0]*c[1][2]) / det,
		},
		{
			(c[1][0]*c[2][1] - c[1][1]*c[2][0]) / det,
			(c[0][1]*c[2][0] - c[0][0]*c[2][1]) / det,
			(c[0][0]*c[1][1] - c[0][1]*c[1][0]) / det,
		},
	}
	return res, nil
}

// Inner returns the matrix product t·o.
func (t *Tensor) Inner(o *Tensor) *Tensor {
	res := &Tensor{leaf: leaf{name: t.name + "_inner"}}
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				res.c[i][j] += t.c[i][k] * o.c[k][j]
			}
		}
	}
	return res
}

// Schur returns the element-wise product of t and o.
func (t *Tensor) Schur(o *Tensor) *Tensor {
	res := &Tensor{leaf: leaf{name: t.name + "_schur"}}
	for i := range 3 {
		for j := range 3 {
			res.c[i][j] = t.c[i][j] * o.c[i][j]
		}
	}
	return res
}

func (t *Tensor) String() string {
	cs := t.Components()
	return joinComponents(cs[:])
}
