// Package parse parses OpenFOAM dictionaries, and their YAML renderings,
// into IR trees.
//
// # Usage
//
//	// Parse dictionary text
//	root, err := parse.Parse(data)
//
//	// Parse a YAML rendering
//	root, err := parse.Parse(data, parse.ParseYAML())
//
//	// Parse a file; the root is named after the file
//	root, err := parse.ParseFile("system/fvSchemes")
//
//	// Parse a whole case directory
//	root, err := parse.ParseCase("cavity")
//
// When an entry name repeats within a dictionary, the later entry
// replaces the earlier one at the earlier position.
//
// # Related Packages
//
//   - github.com/signadot/foamdict/ir - IR representation
//   - github.com/signadot/foamdict/encode - Encode IR to text
//   - github.com/signadot/foamdict/token - Tokenization
package parse
