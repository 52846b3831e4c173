package sqv

import "fmt"

// ErrKind classifies a parsing failure.
type ErrKind int

const (
	// ErrMalformedNumber is reported in every parse mode: a scalar
	// lookahead character that does not begin a valid numeric literal.
	ErrMalformedNumber ErrKind = iota
	// ErrUnterminatedString is reported in strict mode for a string
	// whose closing delimiter is missing.
	ErrUnterminatedString
	// ErrUnterminatedArray is reported in strict mode for an array
	// whose ']' is missing.
	ErrUnterminatedArray
	// ErrBadKeyword is reported in strict mode when a 't', 'f' or 'n'
	// lookahead is not followed by the full true/false/nil keyword.
	ErrBadKeyword
	// ErrUnexpectedChar is reported in strict mode for any character
	// that cannot begin a value where one is required.
	ErrUnexpectedChar
	// ErrTrailingInput is reported in strict mode when non-whitespace
	// input remains after the first value.
	ErrTrailingInput
	// ErrDepthExceeded is reported in every parse mode when array
	// nesting exceeds the configured maximum depth.
	ErrDepthExceeded
)

// String returns a human-readable name for the error kind.
func (k ErrKind) String() string {
	switch k {
	case ErrMalformedNumber:
		return "malformed number"
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrUnterminatedArray:
		return "unterminated array"
	case ErrBadKeyword:
		return "bad keyword"
	case ErrUnexpectedChar:
		return "unexpected character"
	case ErrTrailingInput:
		return "trailing input"
	case ErrDepthExceeded:
		return "depth exceeded"
	default:
		return "unknown error"
	}
}

// ParseError describes a single parsing failure and the byte offset at
// which it occurred.
type ParseError struct {
	Kind    ErrKind
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sqv: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("sqv: %s at offset %d", e.Kind, e.Offset)
}
