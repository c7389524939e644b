// Package gomap maps dictionaries to and from Go values.
//
// Dictionaries become ordered mappings, keys holding a single value
// become that value and keys holding several become sequences. Words
// OpenFOAM reads as switches (on, off, yes, no, true, false) become
// booleans. Struct fields are matched with `yaml` tags.
package gomap
