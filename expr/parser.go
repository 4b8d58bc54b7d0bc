// SPDX-License-Identifier: MIT

package expr

import "strings"

// parser is a recursive-descent parser over the token slice.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary ('**' unary)?
//	primary := NUMBER | 'x' | CONST | FUNC '(' expr ')' | '(' expr ')'
type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, syntaxError(p.src, t.pos, "expected %s, found %s", kind, describe(t))
	}

	return t, nil
}

func describe(t token) string {
	switch t.kind {
	case tokIdent:
		return "identifier " + t.text
	case tokNumber:
		return "number " + t.text
	default:
		return t.kind.String()
	}
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, l: left, r: right, pos: t.pos}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, l: left, r: right, pos: t.pos}
	}
}

func (p *parser) parseUnary() (node, error) {
	t := p.peek()
	if t.kind == tokPlus || t.kind == tokMinus {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return unaryNode{neg: t.kind == tokMinus, x: x, pos: t.pos}, nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: tokPow, l: base, r: exp, pos: t.pos}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numberNode{v: t.num, pos: t.pos}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(tokRParen); err != nil {
			return nil, err
		}

		return inner, nil
	case tokIdent:
		return p.parseIdent(t)
	default:
		return nil, syntaxError(p.src, t.pos, "unexpected %s", describe(t))
	}
}

func (p *parser) parseIdent(t token) (node, error) {
	if t.text == "x" {
		return varNode{pos: t.pos}, nil
	}
	if v, ok := constants[t.text]; ok {
		return constNode{name: t.text, v: v, pos: t.pos}, nil
	}
	fn, ok := functions[t.text]
	if !ok {
		return nil, &Error{Expr: p.src, Pos: t.pos, Detail: t.text, Err: ErrUnknownIdent}
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(tokRParen); err != nil {
		return nil, err
	}

	return callNode{name: t.text, fn: fn, arg: arg, pos: t.pos}, nil
}

// Expr is a parsed, immutable formula in x. It is safe for concurrent use.
type Expr struct {
	src  string
	root node
}

// Parse compiles src into an Expr.
// Errors: *Error wrapping ErrSyntax or ErrUnknownIdent (and numerr.ErrExpression).
func Parse(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, syntaxError(src, 0, "empty formula")
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxError(src, t.pos, "unexpected %s", describe(t))
	}

	return &Expr{src: src, root: root}, nil
}

// MustParse is Parse for package-level formulas known to be valid; it panics on error.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return e
}

// Eval computes the formula at x.
// Errors: *Error wrapping ErrNonFinite when x or any intermediate value is ±Inf/NaN.
func (e *Expr) Eval(x float64) (float64, error) {
	v, pos, ok := e.root.eval(x)
	if !ok {
		return 0, &Error{Expr: e.src, Pos: pos, X: x, InEval: true, Err: ErrNonFinite}
	}

	return v, nil
}

// String returns the source text the Expr was parsed from.
func (e *Expr) String() string { return e.src }

// Tree returns a fully parenthesised rendering of the parsed tree, useful for
// checking precedence.
func (e *Expr) Tree() string { return e.root.String() }

// Evaluate parses src and evaluates it once at x.
func Evaluate(src string, x float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}

	return e.Eval(x)
}
