// Package foamdict reads, edits and writes OpenFOAM dictionaries.
//
// The subpackages hold the pieces: [token] splits dictionary text,
// [parse] builds [ir] trees from text or YAML, [encode] writes them
// back, and [libdiff] compares them. This package ties them together
// for callers that only need whole documents.
package foamdict

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/format"
	"github.com/signadot/foamdict/ir"
	"github.com/signadot/foamdict/libdiff"
	"github.com/signadot/foamdict/parse"
)

// Parse reads textOrPath in format f. A single line naming an
// existing file is read from disk, with the root named after the file;
// anything else is parsed as text.
func Parse(textOrPath string, f format.Format) (*ir.Node, error) {
	if isPath(textOrPath) {
		return parse.ParseFile(textOrPath, parse.ParseFormat(f))
	}
	return parse.Parse([]byte(textOrPath), parse.ParseFormat(f))
}

func isPath(s string) bool {
	if s == "" || strings.ContainsAny(s, "\n;{") {
		return false
	}
	fi, err := os.Stat(s)
	return err == nil && fi.Mode().IsRegular()
}

// Get returns the entry of tree reached by names, or nil.
func Get(tree *ir.Node, names ...string) ir.Item {
	if tree == nil {
		return nil
	}
	return ir.Get(tree, names...)
}

// Write encodes tree into dest in format f. When dest is a directory
// the file is named after the tree with the suffix of f.
func Write(tree *ir.Node, dest string, f format.Format) (string, error) {
	opt := encode.EncodeFormat(f)
	if fi, err := os.Stat(dest); err == nil && fi.IsDir() {
		return encode.WriteTo(tree, dest, opt)
	}
	if err := encode.WriteFile(tree, dest, opt); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return dest, nil
}

// Diff compares the dictionary text of two trees line by line.
func Diff(from, to *ir.Node) ([]libdiff.Line, error) {
	return libdiff.Diff(from, to)
}
