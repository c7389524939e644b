package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/foamdict/encode"
	"github.com/signadot/foamdict/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Op   Op
	Text string
}

// Diff compares the renderings of from and to line by line. Options
// select the rendering, dictionary text by default.
func Diff(from, to *ir.Node, opts ...encode.EncodeOption) ([]Line, error) {
	a, err := render(from, opts)
	if err != nil {
		return nil, err
	}
	b, err := render(to, opts)
	if err != nil {
		return nil, err
	}
	return DiffText(a, b), nil
}

func render(root *ir.Node, opts []encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(root, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DiffText compares two texts line by line.
func DiffText(a, b string) []Line {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		d := &diffs[i]
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, l := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: l})
		}
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write renders lines with their marks. With context >= 0 only changed
// lines and up to context surrounding lines are written, runs of
// skipped lines being replaced by "...".
func Write(w io.Writer, lines []Line, context int, colorFn func(Op, string) string) error {
	keep := make([]bool, len(lines))
	for i := range lines {
		if context < 0 || lines[i].Op != Equal {
			keep[i] = true
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			if lines[j].Op != Equal {
				keep[i] = true
				break
			}
		}
	}
	var b strings.Builder
	skipped := false
	for i := range lines {
		if !keep[i] {
			if !skipped {
				b.WriteString("...\n")
				skipped = true
			}
			continue
		}
		skipped = false
		l := lines[i].Op.Mark() + " " + lines[i].Text
		if colorFn != nil {
			l = colorFn(lines[i].Op, l)
		}
		b.WriteString(l + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
