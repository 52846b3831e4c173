// Package scanner provides the byte-level cursor the sqv parser runs
// on: an explicit index over the input rather than an iterator pair,
// which keeps bounds checks trivial and the parser fuzzable.
package scanner

import (
	"errors"
	"strconv"
)

// Scanner is an index-based cursor over a byte slice.
type Scanner struct {
	input []byte
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input []byte) *Scanner {
	return &Scanner{input: input}
}

// EOF reports whether the cursor has reached the end of the input.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.input)
}

// Peek returns the byte at the cursor without advancing, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.input[s.pos]
}

// Next returns the byte at the cursor and advances past it, or 0 at EOF.
func (s *Scanner) Next() byte {
	if s.EOF() {
		return 0
	}
	c := s.input[s.pos]
	s.pos++
	return c
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Advance moves the cursor forward by n bytes, clamped to the end of
// the input.
func (s *Scanner) Advance(n int) {
	s.pos += n
	if s.pos > len(s.input) {
		s.pos = len(s.input)
	}
}

// Rest returns the unconsumed remainder of the input.
func (s *Scanner) Rest() []byte {
	return s.input[s.pos:]
}

// HasPrefix reports whether the unconsumed input begins with p.
func (s *Scanner) HasPrefix(p string) bool {
	rest := s.Rest()
	if len(rest) < len(p) {
		return false
	}
	return string(rest[:len(p)]) == p
}

// SkipSpace advances past ASCII whitespace.
func (s *Scanner) SkipSpace() {
	for !s.EOF() {
		switch s.input[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// ErrNoFloat is returned by FloatPrefix when the input does not begin
// with a valid floating-point literal.
var ErrNoFloat = errors.New("no float literal")

// FloatPrefix scans the longest prefix of b that forms a valid
// floating-point literal (optional sign, digits, decimal point,
// optional exponent) and returns its value narrowed to a 32-bit float
// together with the number of bytes consumed. A prefix with no
// mantissa digits yields ErrNoFloat; a literal whose magnitude
// overflows a 32-bit float yields the range error from strconv.
func FloatPrefix(b []byte) (float32, int, error) {
	i := 0
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digits := 0
	for i < len(b) && isDigit(b[i]) {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && isDigit(b[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0, ErrNoFloat
	}
	// The exponent is only part of the literal if at least one digit
	// follows the marker; "1e" scans as "1" with the 'e' left over.
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expStart := j
		for j < len(b) && isDigit(b[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	f, err := strconv.ParseFloat(string(b[:i]), 32)
	if err != nil {
		return 0, 0, err
	}
	return float32(f), i, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
