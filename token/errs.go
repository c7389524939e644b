package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrIllegalChar  = errors.New("illegal character")
	ErrUnterminated = errors.New("unterminated")
	ErrUnbalanced   = errors.New("unbalanced parentheses")
	ErrUnexpected   = errors.New("unexpected token")
	ErrEOF          = errors.New("unexpected end of file")
)

// SyntaxError reports malformed input at a 1-based line and column.
// It matches both ErrSyntax and the more specific Err under errors.Is.
type SyntaxError struct {
	Err  error
	Msg  string
	Line int
	Col  int
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}
	return []error{ErrSyntax, e.Err}
}

func (e *SyntaxError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s at line %d, column %d", ErrSyntax, msg, e.Line, e.Col)
}

func NewSyntaxErr(err error, msg string, p *Pos) *SyntaxError {
	e := &SyntaxError{Err: err, Msg: msg}
	if p != nil {
		e.Line, e.Col = p.LineCol()
	}
	return e
}

func IllegalCharErr(c rune, p *Pos) error {
	return NewSyntaxErr(ErrIllegalChar, fmt.Sprintf("illegal character %q", c), p)
}

// UnexpectedErr reports tok in a place the grammar does not allow it.
func UnexpectedErr(tok *Token) error {
	if tok.Type == TEOF {
		return NewSyntaxErr(ErrEOF, "", tok.Pos)
	}
	return NewSyntaxErr(ErrUnexpected, fmt.Sprintf("unexpected token %q of type %s", tok.String(), tok.Type), tok.Pos)
}

func ExpectedErr(what string, tok *Token) error {
	if tok.Type == TEOF {
		return NewSyntaxErr(ErrEOF, fmt.Sprintf("unexpected end of file, expected %s", what), tok.Pos)
	}
	return NewSyntaxErr(ErrUnexpected, fmt.Sprintf("expected %s, got %q", what, tok.String()), tok.Pos)
}
