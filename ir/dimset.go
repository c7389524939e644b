package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// DimType indexes the base dimensions of a [DimSet].
type DimType int

const (
	Mass DimType = iota
	Length
	Time
	Temperature
	Quantity
	Current
	LuminousIntensity
)

func (d DimType) String() string {
	s, ok := map[DimType]string{
		Mass:              "mass",
		Length:            "length",
		Time:              "time",
		Temperature:       "temperature",
		Quantity:          "quantity",
		Current:           "current",
		LuminousIntensity: "luminous intensity",
	}[d]
	if ok {
		return s
	}
	return "<unknown dimension>"
}

// DimSet holds the exponents of the seven base dimensions, written
// [0 2 -1 0 0 0 0].
type DimSet struct {
	leaf
	d [7]int64
}

func NewDimSet(name string, exps ...int64) (*DimSet, error) {
	if len(exps) != 7 {
		return nil, fmt.Errorf("%w: dimension set %s needs 7 components, got %d", ErrShape, name, len(exps))
	}
	ds := &DimSet{leaf: leaf{name: name}}
	copy(ds.d[:], exps)
	return ds, nil
}

func (ds *DimSet) Kind() Kind { return DimSetKind }
func (ds *DimSet) Get(d DimType) int64 { return ds.d[d] }
func (ds *DimSet) Components() [7]int64 { return ds.d }

func (ds *DimSet) String() string {
	parts := make([]string, len(ds.d))
	for i, e := range ds.d {
		parts[i] = strconv.FormatInt(e, 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
