// Package eval resolves `$name` macro references in dictionaries and
// evaluates expressions over dictionary values.
//
// Macro references follow dictionary scoping: `$name` is looked up in
// the enclosing dictionary and then outward, `$a.b` descends from the
// first match of a, and `$:a.b` starts from the root. Expressions use
// the expr language (github.com/expr-lang/expr) with the keys in scope
// as variables.
package eval
