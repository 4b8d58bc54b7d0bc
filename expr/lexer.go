// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow
	tokLParen
	tokRParen
)

var tokenNames = [...]string{
	tokEOF:    "end of input",
	tokNumber: "number",
	tokIdent:  "identifier",
	tokPlus:   "'+'",
	tokMinus:  "'-'",
	tokStar:   "'*'",
	tokSlash:  "'/'",
	tokPow:    "'**'",
	tokLParen: "'('",
	tokRParen: "')'",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind tokenKind
	pos  int     // byte offset in source
	text string  // identifier text or number lexeme
	num  float64 // parsed value for tokNumber
}

// lex splits src into tokens. It fails on the first byte that cannot start a token.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, pos: i})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokStar, pos: i})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case isDigit(c) || c == '.':
			tok, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case c < 0x80 && (unicode.IsLetter(rune(c)) || c == '_'):
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '_' || (src[i] < 0x80 && unicode.IsLetter(rune(src[i])))) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: src[start:i]})
		default:
			r, _ := utf8.DecodeRuneInString(src[i:])
			return nil, syntaxError(src, i, "unexpected character %q", r)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})

	return toks, nil
}

// lexNumber scans digits[.digits][(e|E)[+-]digits] starting at i.
func lexNumber(src string, i int) (token, int, error) {
	start := i
	digits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return token{}, 0, syntaxError(src, start, "malformed number")
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}
	text := src[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, syntaxError(src, start, "malformed number %q", text)
	}

	return token{kind: tokNumber, pos: start, text: text, num: v}, i, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
