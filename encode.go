package sqv

import (
	"io"
	"strconv"
)

// Encoder writes SQF value literals to an output stream.
type Encoder struct {
	w    io.Writer
	opts []EncodeOption
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the canonical encoding of v to the stream. The only
// errors are option errors and errors from the underlying writer.
func (e *Encoder) Encode(v Value) error {
	cfg := encodeConfig{}
	for _, opt := range e.opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}
	_, err := e.w.Write(appendValue(nil, v, !cfg.noEscape))
	return err
}

// Marshal returns the canonical encoding of v.
func Marshal(v Value, opts ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return appendValue(nil, v, !cfg.noEscape), nil
}

// String returns the canonical encoding of v: nil, true and false as
// keywords, scalars as the shortest rendering that round-trips the
// underlying 32-bit float, strings double-quoted with embedded double
// quotes doubled, and arrays bracketed with comma-separated elements.
// A string parsed from a single-quoted literal still encodes with
// double quotes; the source delimiter is never preserved.
func (v Value) String() string {
	return string(appendValue(nil, v, true))
}

func appendValue(dst []byte, v Value, escape bool) []byte {
	switch v.kind {
	case KindNil:
		return append(dst, "nil"...)
	case KindBoolean:
		return strconv.AppendBool(dst, v.b)
	case KindScalar:
		return strconv.AppendFloat(dst, float64(v.num), 'g', -1, 32)
	case KindString:
		if !escape {
			return append(dst, v.str...)
		}
		dst = append(dst, '"')
		for i := 0; i < len(v.str); i++ {
			c := v.str[i]
			dst = append(dst, c)
			if c == '"' {
				dst = append(dst, '"')
			}
		}
		return append(dst, '"')
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, e, escape)
		}
		return append(dst, ']')
	default:
		return dst
	}
}
