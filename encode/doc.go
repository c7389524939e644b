// Package encode writes IR trees as OpenFOAM dictionary text or as YAML.
//
// # Usage
//
//	// Write dictionary text
//	err := encode.Encode(root, os.Stdout)
//
//	// Write YAML
//	err := encode.Encode(root, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// Write a file named after the root
//	path, err := encode.WriteTo(root, "out", encode.EncodeFormat(format.YAMLFormat))
//
// Both renderings read back, through package parse, into a tree equal to
// the one written.
//
// # Related Packages
//
//   - github.com/signadot/foamdict/ir - IR representation
//   - github.com/signadot/foamdict/parse - Parse text to IR
package encode
