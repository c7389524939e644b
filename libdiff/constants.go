package libdiff

type Op int

const (
	Equal Op = iota
	Insert
	Delete
	Replace
)

var opMarks = map[Op]string{
	Equal:   " ",
	Insert:  "+",
	Delete:  "-",
	Replace: "~",
}

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

// Mark returns the one character prefix used for o in rendered diffs.
func (o Op) Mark() string { return opMarks[o] }
