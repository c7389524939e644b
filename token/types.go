package token

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TEOF TokenType = iota
	TWord
	TString
	TInteger
	TFloat
	TDollar
	TLCurl
	TRCurl
	TLParen
	TRParen
	TLSquare
	TRSquare
	TSemi
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TWord:    "TWord",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TDollar:  "TDollar",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TSemi:    "TSemi",
	}[t]
}

func (t TokenType) IsNumber() bool {
	return t == TInteger || t == TFloat
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text of the token. Quoted strings are returned
// without their quotes and with surrounding space trimmed.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return strings.TrimSpace(string(t.Bytes[1 : len(t.Bytes)-1]))
	case TEOF:
		return "EOF"
	default:
		return string(t.Bytes)
	}
}

func (t *Token) Int() (int64, error) {
	return strconv.ParseInt(string(t.Bytes), 10, 64)
}

func (t *Token) Float() (float64, error) {
	return strconv.ParseFloat(string(t.Bytes), 64)
}

// IsCompound reports whether a word token carries a fused parenthesised
// suffix, as in div(phi,U).
func (t *Token) IsCompound() bool {
	return t.Type == TWord && strings.IndexByte(string(t.Bytes), '(') != -1
}
