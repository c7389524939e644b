package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/foamdict/ir"
)

func MustString(root *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
