package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/ir"
)

// Logf writes to stderr. Tree arguments are rendered as dictionary
// text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %s", x.Name())
				continue
			}
			args[i] = buf.String()
		case *ir.Key:
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
