package ir

import (
	"fmt"
	"slices"
)

// Enum is a choice among a set of words with an active default. Words
// read from a dictionary become single-item enums.
type Enum struct {
	leaf
	items []string
	def   string
}

func NewEnum(name string, items []string, def string) (*Enum, error) {
	e := &Enum{leaf: leaf{name: name}}
	for _, it := range items {
		e.AddItem(it)
	}
	if !e.Has(def) {
		return nil, fmt.Errorf("%w: %s: default %q not in %v", ErrEnum, name, def, e.items)
	}
	e.def = def
	return e, nil
}

// Word creates the enum for a word read from text.
func Word(name, w string) *Enum {
	return &Enum{leaf: leaf{name: name}, items: []string{w}, def: w}
}

func (e *Enum) Kind() Kind { return EnumKind }
func (e *Enum) Default() string { return e.def }
func (e *Enum) String() string { return e.def }

func (e *Enum) Items() []string {
	return slices.Clone(e.items)
}

func (e *Enum) Has(it string) bool {
	return slices.Contains(e.items, it)
}

// AddItem adds it to the item set. Adding an existing item has no
// effect.
func (e *Enum) AddItem(it string) {
	if e.Has(it) {
		return
	}
	e.items = append(e.items, it)
}

func (e *Enum) RemoveItem(it string) error {
	if it == e.def {
		return fmt.Errorf("%w: %s: cannot remove default %q", ErrEnum, e.name, it)
	}
	i := slices.Index(e.items, it)
	if i == -1 {
		return fmt.Errorf("%w: %s: item %q", ErrNotFound, e.name, it)
	}
	e.items = slices.Delete(e.items, i, i+1)
	return nil
}

func (e *Enum) SetDefault(it string) error {
	if !e.Has(it) {
		return fmt.Errorf("%w: %s: default %q not in %v", ErrEnum, e.name, it, e.items)
	}
	e.def = it
	return nil
}
