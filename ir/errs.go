package ir

import (
	"errors"
)

var (
	// ErrRange reports a numeric value outside its declared bounds.
	ErrRange = errors.New("value out of range")
	// ErrEnum reports an enum default that is not one of its items.
	ErrEnum = errors.New("enum violation")
	// ErrDuplicateName reports an insertion under a name already taken.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrShape reports a composite with the wrong number of components.
	ErrShape = errors.New("wrong shape")
	// ErrStructure reports a tree edit that would break the node
	// invariants.
	ErrStructure = errors.New("structural error")
	ErrNotFound  = errors.New("not found")
	ErrSingular  = errors.New("singular tensor")
)
