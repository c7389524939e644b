package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a named leaf held by a [Key] or by a [List] element.
//
// The set of implementations is closed: *Int, *Float, *String, *Enum,
// *Vector, *Tensor, *DimSet and *List.
type Value interface {
	Name() string
	// SetName renames the value. A value already held by a Key must be
	// renamed through [Key.Replace] instead.
	SetName(string)
	Kind() Kind
	String() string
	isValue()
}

type leaf struct {
	name string
}

func (l *leaf) Name() string { return l.name }
func (l *leaf) SetName(n string) { l.name = n }
func (*leaf) isValue() {}

const (
	// literal bounds are widened to include the literal itself
	literalIntMax   = 100000
	literalFloatMax = 1e5
)

type Int struct {
	leaf
	v, min, max int64
}

func NewInt(name string, v, min, max int64) (*Int, error) {
	if min > max {
		return nil, fmt.Errorf("%w: %s: min %d > max %d", ErrRange, name, min, max)
	}
	if v < min || v > max {
		return nil, fmt.Errorf("%w: %s: %d not in [%d, %d]", ErrRange, name, v, min, max)
	}
	return &Int{leaf: leaf{name: name}, v: v, min: min, max: max}, nil
}

// IntLiteral creates an Int for a value read from text, with bounds
// [min(0, v), max(100000, v)].
func IntLiteral(name string, v int64) *Int {
	return &Int{
		leaf: leaf{name: name},
		v:    v,
		min:  min(0, v),
		max:  max(literalIntMax, v),
	}
}

func (i *Int) Kind() Kind { return IntKind }
func (i *Int) Value() int64 { return i.v }
func (i *Int) Min() int64 { return i.min }
func (i *Int) Max() int64 { return i.max }
func (i *Int) String() string { return strconv.FormatInt(i.v, 10) }

func (i *Int) Set(v int64) error {
	if v < i.min || v > i.max {
		return fmt.Errorf("%w: %s: %d not in [%d, %d]", ErrRange, i.name, v, i.min, i.max)
	}
	i.v = v
	return nil
}

func (i *Int) SetRange(lo, hi int64) error {
	if lo > hi || i.v < lo || i.v > hi {
		return fmt.Errorf("%w: %s: %d not in [%d, %d]", ErrRange, i.name, i.v, lo, hi)
	}
	i.min, i.max = lo, hi
	return nil
}

type Float struct {
	leaf
	v, min, max float64
}

func NewFloat(name string, v, min, max float64) (*Float, error) {
	if !(min <= max) {
		return nil, fmt.Errorf("%w: %s: min %g > max %g", ErrRange, name, min, max)
	}
	if !(v >= min && v <= max) {
		return nil, fmt.Errorf("%w: %s: %g not in [%g, %g]", ErrRange, name, v, min, max)
	}
	return &Float{leaf: leaf{name: name}, v: v, min: min, max: max}, nil
}

// FloatLiteral creates a Float for a value read from text, with bounds
// [min(0, v), max(1e5, v)].
func FloatLiteral(name string, v float64) *Float {
	return &Float{
		leaf: leaf{name: name},
		v:    v,
		min:  math.Min(0, v),
		max:  math.Max(literalFloatMax, v),
	}
}

func (f *Float) Kind() Kind { return FloatKind }
func (f *Float) Value() float64 { return f.v }
func (f *Float) Min() float64 { return f.min }
func (f *Float) Max() float64 { return f.max }
func (f *Float) String() string { return FormatFloat(f.v) }

func (f *Float) Set(v float64) error {
	if !(v >= f.min && v <= f.max) {
		return fmt.Errorf("%w: %s: %g not in [%g, %g]", ErrRange, f.name, v, f.min, f.max)
	}
	f.v = v
	return nil
}

func (f *Float) SetRange(lo, hi float64) error {
	if !(lo <= hi) || f.v < lo || f.v > hi {
		return fmt.Errorf("%w: %s: %g not in [%g, %g]", ErrRange, f.name, f.v, lo, hi)
	}
	f.min, f.max = lo, hi
	return nil
}

// FormatFloat renders f so that it reads back as a float: the result
// always carries a decimal point or an exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}

// formatComponent renders a vector or tensor component.
func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type String struct {
	leaf
	v string
}

func NewString(name, v string) *String {
	return &String{leaf: leaf{name: name}, v: v}
}

func (s *String) Kind() Kind { return StringKind }
func (s *String) Value() string { return s.v }
func (s *String) Set(v string) { s.v = v }
func (s *String) String() string { return `"` + s.v + `"` }
