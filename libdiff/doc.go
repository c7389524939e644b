// Package libdiff compares dictionary trees, either line by line over
// their renderings or entry by entry.
package libdiff
