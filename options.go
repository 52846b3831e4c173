package sqv

import "fmt"

const defaultMaxDepth = 10000

type parseConfig struct {
	strict   bool
	maxDepth int
}

// ParseOption configures Parse and ParseString.
type ParseOption func(*parseConfig) error

// Strict returns a ParseOption that disables the lenient parsing
// behavior inherited from the SQF runtime. In strict mode the parser
// validates full true/false keywords, recognizes the nil keyword,
// requires commas between array elements, permits only ASCII
// whitespace between tokens, and reports unterminated strings and
// arrays as well as trailing input. Every canonical encoding parses
// cleanly in strict mode.
func Strict() ParseOption {
	return func(c *parseConfig) error {
		c.strict = true
		return nil
	}
}

// MaxDepth returns a ParseOption that sets the maximum array nesting
// depth. This guards against stack exhaustion on adversarial input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) ParseOption {
	return func(c *parseConfig) error {
		if n <= 0 {
			return fmt.Errorf("sqv: max depth must be a positive integer")
		}
		c.maxDepth = n
		return nil
	}
}

type encodeConfig struct {
	noEscape bool
}

// EncodeOption configures an Encoder or Marshal.
type EncodeOption func(*encodeConfig) error

// NoEscape returns an EncodeOption that emits string payloads raw:
// unquoted and with embedded quote characters left untouched. The
// output of NoEscape is generally not parseable back.
func NoEscape() EncodeOption {
	return func(c *encodeConfig) error {
		c.noEscape = true
		return nil
	}
}
