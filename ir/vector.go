package ir

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a 3-component float value, written (x y z).
type Vector struct {
	leaf
	c [3]*Float
}

var vectorNames = [3]string{"x", "y", "z"}

func NewVector(name string, x, y, z float64) *Vector {
	v := &Vector{leaf: leaf{name: name}}
	for i, f := range [3]float64{x, y, z} {
		v.c[i] = FloatLiteral(vectorNames[i], f)
	}
	return v
}

// VectorOf creates a vector from exactly three components.
func VectorOf(name string, comps ...float64) (*Vector, error) {
	if len(comps) != 3 {
		return nil, fmt.Errorf("%w: vector %s needs 3 components, got %d", ErrShape, name, len(comps))
	}
	return NewVector(name, comps[0], comps[1], comps[2]), nil
}

func (v *Vector) Kind() Kind { return VectorKind }
func (v *Vector) X() float64 { return v.c[0].v }
func (v *Vector) Y() float64 { return v.c[1].v }
func (v *Vector) Z() float64 { return v.c[2].v }

// Component returns the bounded float holding component i.
func (v *Vector) Component(i int) *Float { return v.c[i] }

func (v *Vector) Components() [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}

func (v *Vector) Magnitude() float64 {
	x, y, z := v.X(), v.Y(), v.Z()
	return math.Sqrt(x*x + y*y + z*z)
}

// Normalize scales v to unit length in place. A vector whose magnitude
// is below tol is set to zero.
func (v *Vector) Normalize(tol float64) *Vector {
	m := v.Magnitude()
	for i := range v.c {
		f := 0.0
		if m >= tol {
			f = v.c[i].v / m
		}
		v.c[i] = FloatLiteral(vectorNames[i], f)
	}
	return v
}

func (v *Vector) String() string {
	cs := v.Components()
	return joinComponents(cs[:])
}

func joinComponents(cs []float64) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = formatComponent(c)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
