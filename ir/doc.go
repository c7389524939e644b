// Package ir provides the in-memory representation of OpenFOAM
// dictionaries.
//
// A dictionary is a tree of [Node] values. A node holds an ordered
// sequence of entries ([Item]): keys ([Key]), child dictionaries, and
// lists of dictionaries ([List] in node mode). A key holds an ordered
// set of named leaf values ([Value]).
//
// # Values
//
//   - [Int] and [Float] carry bounds; values read from text get bounds
//     wide enough to include them.
//   - [Enum] is a word; [String] is a quoted string.
//   - [Vector], [Tensor] and [DimSet] are fixed-size numeric tuples.
//   - [List] is a sequence of elements, each a run of values.
//
// # Structure
//
// Names are unique among the entries of a node. A node that holds keys
// cannot gain child dictionaries through [Node.AddChild]; dictionaries
// read from files are assembled with [NewDict], which accepts entries in
// file order.
//
// # Related Packages
//
//   - github.com/signadot/foamdict/parse - Parse text to IR
//   - github.com/signadot/foamdict/encode - Encode IR to text
package ir
