package eval

import "errors"

var (
	ErrUndefined = errors.New("undefined macro")
	ErrCycle     = errors.New("macro cycle")
)
