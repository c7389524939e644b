package encode

import (
	"os"
	"path/filepath"

	"github.com/signadot/foamdict/ir"
)

// WriteFile encodes root into the file at path.
func WriteFile(root *ir.Node, path string, opts ...EncodeOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(root, f, opts...)
}

// WriteTo encodes root into dir, in a file named after root with the
// suffix of the chosen format. It returns the path written.
func WriteTo(root *ir.Node, dir string, opts ...EncodeOption) (string, error) {
	f := FormatFromOpts(opts...)
	path := filepath.Join(dir, root.Name()+f.Suffix())
	if err := WriteFile(root, path, opts...); err != nil {
		return "", err
	}
	return path, nil
}
