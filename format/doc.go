// Package format names the serialization formats a dictionary tree can be
// read from and written to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f = format.FromPath("system/fvSchemes.yaml")
//
// # Related Packages
//
//   - github.com/signadot/foamdict/parse - Parse text to IR
//   - github.com/signadot/foamdict/encode - Encode IR to text
package format
