// Package token provides tokenization of OpenFOAM dictionary text.
//
// [Tokenize] splits a document into words, quoted strings, numbers and
// punctuation. Whitespace, commas and both comment styles are dropped.
// A word immediately followed by an opening parenthesis absorbs the
// balanced parenthesised text, so that div(phi,U) is a single word.
// A macro reference such as $U or $:solvers.p is a single [TDollar]
// token.
package token
