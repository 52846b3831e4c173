package sqv

import (
	"github.com/sqf-tools/go-sqv/internal/scanner"
)

// Parse decodes a single SQF value literal from data.
//
// The default mode is lenient, matching how the SQF runtime itself
// reads these literals: any character that cannot begin a value is
// skipped as a separator, booleans are accepted on their first letter
// alone, an unterminated string yields the text collected so far, an
// unterminated array discards all partial progress and yields Nil, and
// anything after the first value is ignored. Empty input yields Nil.
// The one hard failure is a malformed numeric literal, reported as a
// *ParseError with ErrMalformedNumber.
//
// With the Strict option every absorbed case above becomes a
// *ParseError instead; see Strict for the exact rules.
func Parse(data []byte, opts ...ParseOption) (Value, error) {
	cfg := parseConfig{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Value{}, err
		}
	}

	p := &parser{s: scanner.New(data), cfg: cfg}
	if cfg.strict {
		return p.parseStrictDocument()
	}
	return p.parseValue(0)
}

// ParseString is Parse over a string. It replaces the literal-suffix
// shorthand some callers of the original format rely on for inline
// literals.
func ParseString(s string, opts ...ParseOption) (Value, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	s   *scanner.Scanner
	cfg parseConfig
}

func (p *parser) errorf(kind ErrKind, offset int, msg string) (Value, error) {
	return Value{}, &ParseError{Kind: kind, Offset: offset, Message: msg}
}

// parseValue is the lenient dispatch loop: one lookahead byte decides
// the production, everything unrecognized is skipped, and exhausting
// the input while skipping yields Nil.
func (p *parser) parseValue(depth int) (Value, error) {
	if depth > p.cfg.maxDepth {
		return p.errorf(ErrDepthExceeded, p.s.Pos(), "")
	}
	for !p.s.EOF() {
		switch c := p.s.Peek(); {
		case c == '[':
			return p.parseArray(depth)
		case c == '"' || c == '\'':
			return p.parseString()
		case c == 't' || c == 'f':
			return p.parseBool(), nil
		case isScalarStart(c):
			return p.parseScalar()
		default:
			p.s.Next()
		}
	}
	return Value{}, nil
}

// parseArray consumes '[' and accumulates elements until ']' closes
// the array. Separators are not validated: the element dispatch skips
// them (and anything else unrecognized, including a ']' preceded by
// noise). Exhausting the input mid-array discards the accumulated
// elements and yields Nil.
func (p *parser) parseArray(depth int) (Value, error) {
	p.s.Next() // consume '['
	elems := []Value{}
	for !p.s.EOF() {
		if p.s.Peek() == ']' {
			p.s.Next()
			return ArrayOf(elems), nil
		}
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
	return Value{}, nil
}

// parseString consumes a quoted string. The opening byte, '"' or '\'',
// is the closing delimiter; a doubled delimiter inside the literal is
// an escape for one literal delimiter byte. The delimiter choice is
// not recorded in the Value. In lenient mode a missing terminator
// yields the text collected so far.
func (p *parser) parseString() (Value, error) {
	start := p.s.Pos()
	q := p.s.Next()
	var out []byte
	for !p.s.EOF() {
		c := p.s.Next()
		if c == q {
			if p.s.Peek() == q {
				p.s.Next()
				out = append(out, q)
				continue
			}
			return Str(string(out)), nil
		}
		out = append(out, c)
	}
	if p.cfg.strict {
		return p.errorf(ErrUnterminatedString, start, "")
	}
	return Str(string(out)), nil
}

// parseBool trusts the lookahead: 't' advances 4 bytes, 'f' advances
// 5, without checking the remaining letters. "tZZZ" is accepted as
// true. Strict mode validates the full keyword before getting here.
func (p *parser) parseBool() Value {
	if p.s.Peek() == 't' {
		p.s.Advance(4)
		return Bool(true)
	}
	p.s.Advance(5)
	return Bool(false)
}

// parseScalar scans the longest valid floating-point literal at the
// cursor. A scalar-start byte that does not begin a valid literal is
// the single hard failure shared by both parse modes.
func (p *parser) parseScalar() (Value, error) {
	start := p.s.Pos()
	f, n, err := scanner.FloatPrefix(p.s.Rest())
	if err != nil {
		if err == scanner.ErrNoFloat {
			return p.errorf(ErrMalformedNumber, start, "")
		}
		return p.errorf(ErrMalformedNumber, start, err.Error())
	}
	p.s.Advance(n)
	return Value{kind: KindScalar, num: f}, nil
}

func isScalarStart(c byte) bool {
	return ('0' <= c && c <= '9') || c == '+' || c == '-' || c == '.'
}

// Strict mode below. The grammar is the same; the difference is that
// nothing is absorbed: separators are required, keywords are spelled
// out, and every truncation has an error kind.

func (p *parser) parseStrictDocument() (Value, error) {
	p.s.SkipSpace()
	if p.s.EOF() {
		return Value{}, nil
	}
	v, err := p.parseStrictValue(0)
	if err != nil {
		return Value{}, err
	}
	p.s.SkipSpace()
	if !p.s.EOF() {
		return p.errorf(ErrTrailingInput, p.s.Pos(), "")
	}
	return v, nil
}

func (p *parser) parseStrictValue(depth int) (Value, error) {
	if depth > p.cfg.maxDepth {
		return p.errorf(ErrDepthExceeded, p.s.Pos(), "")
	}
	switch c := p.s.Peek(); {
	case c == '[':
		return p.parseStrictArray(depth)
	case c == '"' || c == '\'':
		return p.parseString()
	case c == 't':
		return p.expectKeyword("true", Bool(true))
	case c == 'f':
		return p.expectKeyword("false", Bool(false))
	case c == 'n':
		return p.expectKeyword("nil", Value{})
	case isScalarStart(c):
		return p.parseScalar()
	default:
		return p.errorf(ErrUnexpectedChar, p.s.Pos(), "")
	}
}

func (p *parser) parseStrictArray(depth int) (Value, error) {
	start := p.s.Pos()
	p.s.Next() // consume '['
	elems := []Value{}
	p.s.SkipSpace()
	if p.s.Peek() == ']' {
		p.s.Next()
		return ArrayOf(elems), nil
	}
	for {
		if p.s.EOF() {
			return p.errorf(ErrUnterminatedArray, start, "")
		}
		v, err := p.parseStrictValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
		p.s.SkipSpace()
		switch {
		case p.s.EOF():
			return p.errorf(ErrUnterminatedArray, start, "")
		case p.s.Peek() == ']':
			p.s.Next()
			return ArrayOf(elems), nil
		case p.s.Peek() == ',':
			p.s.Next()
			p.s.SkipSpace()
		default:
			return p.errorf(ErrUnexpectedChar, p.s.Pos(), "expected ',' or ']'")
		}
	}
}

func (p *parser) expectKeyword(kw string, v Value) (Value, error) {
	if !p.s.HasPrefix(kw) {
		return p.errorf(ErrBadKeyword, p.s.Pos(), "expected "+kw)
	}
	p.s.Advance(len(kw))
	return v, nil
}
