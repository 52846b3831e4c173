/*
Package sqv parses and encodes SQF value literals: the array, string,
boolean and number literals produced and consumed by the SQF scripting
runtime.

The package revolves around a single tagged value type:

	v, err := sqv.Parse([]byte(`[1, "two", true]`))
	if err != nil {
		// handle error
	}
	v.At(0).Float() // 1
	v.At(1).Text()  // "two"

Parsing is lenient by default, mirroring the format's origin: unknown
characters are skipped as separators, booleans are matched by their
first letter only, and truncated arrays or strings are absorbed rather
than reported. The only hard failure in lenient mode is a malformed
numeric literal. The Strict option turns the absorbed cases into
*ParseError values with a distinct kind per failure:

	v, err := sqv.Parse(data, sqv.Strict())
	var perr *sqv.ParseError
	if errors.As(err, &perr) {
		// perr.Kind, perr.Offset
	}

Encoding always produces the canonical form: double-quoted strings with
embedded quotes doubled, comma-separated arrays, and the shortest
round-tripping rendering of the underlying 32-bit float:

	sqv.Str(`a"b`).String() // "a""b"

For type-parameterized callers, Is and Get mirror the per-kind
predicates and conversions generically:

	if sqv.Is[float32](v) {
		f := sqv.Get[float32](v)
	}
*/
package sqv
