package sqv

// Arithmetic is defined for scalar operands only. When either operand
// is not a scalar, the result is the boolean Value false; this odd but
// established contract is what SQF callers observe and rely on.

// Add returns v + other for two scalars, Bool(false) otherwise.
func (v Value) Add(other Value) Value {
	if v.kind != KindScalar || other.kind != KindScalar {
		return Bool(false)
	}
	return Value{kind: KindScalar, num: v.num + other.num}
}

// Sub returns v - other for two scalars, Bool(false) otherwise.
func (v Value) Sub(other Value) Value {
	if v.kind != KindScalar || other.kind != KindScalar {
		return Bool(false)
	}
	return Value{kind: KindScalar, num: v.num - other.num}
}

// Mul returns v * other for two scalars, Bool(false) otherwise.
func (v Value) Mul(other Value) Value {
	if v.kind != KindScalar || other.kind != KindScalar {
		return Bool(false)
	}
	return Value{kind: KindScalar, num: v.num * other.num}
}

// Div returns v / other for two scalars, Bool(false) otherwise.
// Division by zero follows IEEE 754 semantics.
func (v Value) Div(other Value) Value {
	if v.kind != KindScalar || other.kind != KindScalar {
		return Bool(false)
	}
	return Value{kind: KindScalar, num: v.num / other.num}
}

// Comparisons against a raw number are defined for scalar Values only;
// on any other kind they report false rather than failing. The raw
// operand is narrowed to a 32-bit float before comparing.

// Less reports v < x if v is a scalar, false otherwise.
func (v Value) Less(x float64) bool {
	return v.kind == KindScalar && v.num < float32(x)
}

// LessEq reports v <= x if v is a scalar, false otherwise.
func (v Value) LessEq(x float64) bool {
	return v.kind == KindScalar && v.num <= float32(x)
}

// Greater reports v > x if v is a scalar, false otherwise.
func (v Value) Greater(x float64) bool {
	return v.kind == KindScalar && v.num > float32(x)
}

// GreaterEq reports v >= x if v is a scalar, false otherwise.
func (v Value) GreaterEq(x float64) bool {
	return v.kind == KindScalar && v.num >= float32(x)
}

// EqualNum reports v == x if v is a scalar, false otherwise.
func (v Value) EqualNum(x float64) bool {
	return v.kind == KindScalar && v.num == float32(x)
}

// EqualText reports v == s if v is a string, false otherwise.
// Comparison is case-sensitive.
func (v Value) EqualText(s string) bool {
	return v.kind == KindString && v.str == s
}

// And reports v && b if v is a boolean, false otherwise.
func (v Value) And(b bool) bool {
	return v.kind == KindBoolean && v.b && b
}

// Or reports v || b if v is a boolean, false otherwise.
func (v Value) Or(b bool) bool {
	if v.kind != KindBoolean {
		return false
	}
	return v.b || b
}
