package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Tokenize appends the tokens of src to dst. The result always ends
// with a TEOF token positioned at the end of src.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewPosDoc(src)
	d := src
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch c {
		case ' ', '\t', '\r', '\n', '\f', '\v', ',':
			i++
			continue
		case '/':
			if i+1 < n && d[i+1] == '/' {
				j := bytes.IndexByte(d[i:], '\n')
				if j == -1 {
					i = n
				} else {
					i += j
				}
				continue
			}
			if i+1 < n && d[i+1] == '*' {
				j := bytes.Index(d[i+2:], []byte("*/"))
				if j == -1 {
					return nil, NewSyntaxErr(ErrUnterminated, "unterminated comment", doc.Pos(i))
				}
				i += j + 4
				continue
			}
			return nil, IllegalCharErr('/', doc.Pos(i))
		case '$':
			sz := macro(d[i:])
			dst = append(dst, Token{
				Type:  TDollar,
				Pos:   doc.Pos(i),
				Bytes: d[i : i+sz],
			})
			i += sz
			continue
		case '{', '}', '(', ')', '[', ']', ';':
			dst = append(dst, Token{
				Type:  punctTypes[c],
				Pos:   doc.Pos(i),
				Bytes: d[i : i+1],
			})
			i++
			continue
		case '"':
			j := bytes.IndexByte(d[i+1:], '"')
			if j == -1 {
				return nil, NewSyntaxErr(ErrUnterminated, "unterminated string", doc.Pos(i))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   doc.Pos(i),
				Bytes: d[i : i+j+2],
			})
			i += j + 2
			continue
		}
		if c == '-' || asciiDigit(c) {
			sz, isFloat := number(d[i:])
			if sz == 0 {
				return nil, IllegalCharErr(rune(c), doc.Pos(i))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{
				Type:  tt,
				Pos:   doc.Pos(i),
				Bytes: d[i : i+sz],
			})
			i += sz
			continue
		}
		if wordStart(c) {
			sz, err := word(d[i:], doc, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{
				Type:  TWord,
				Pos:   doc.Pos(i),
				Bytes: d[i : i+sz],
			})
			i += sz
			continue
		}
		r, _ := utf8.DecodeRune(d[i:])
		return nil, IllegalCharErr(r, doc.Pos(i))
	}
	dst = append(dst, Token{Type: TEOF, Pos: doc.end()})
	return dst, nil
}

var punctTypes = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'(': TLParen,
	')': TRParen,
	'[': TLSquare,
	']': TRSquare,
	';': TSemi,
}

func wordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func wordByte(c byte) bool {
	return wordStart(c) || asciiDigit(c)
}

// word scans an identifier and, when it is immediately followed by '(',
// the balanced group that follows.
func word(d []byte, doc *PosDoc, off int) (int, error) {
	i := 1
	for i < len(d) && wordByte(d[i]) {
		i++
	}
	if i == len(d) || d[i] != '(' {
		return i, nil
	}
	depth := 0
	for j := i; j < len(d); {
		r, sz := utf8.DecodeRune(d[j:])
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if !compoundRune(r) {
				return 0, NewSyntaxErr(ErrIllegalChar, "illegal character "+quoteRune(r)+" in compound word", doc.Pos(off+j))
			}
		}
		j += sz
		if depth == 0 {
			return j, nil
		}
	}
	return 0, NewSyntaxErr(ErrUnbalanced, "", doc.Pos(off))
}

// macro scans a macro reference such as $U, $:a.b or $a/b. A lone
// '$' has length 1.
func macro(d []byte) int {
	if len(d) < 2 || !(wordStart(d[1]) || d[1] == ':') {
		return 1
	}
	i := 2
	for i < len(d) && (wordByte(d[i]) || d[i] == '.' || d[i] == ':' || d[i] == '/') {
		i++
	}
	return i
}

func compoundRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case ',', '_', '+', '-', '*', '/', '<', '>', '|', ':', '&', '%', '.', ' ':
		return true
	}
	return false
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}
