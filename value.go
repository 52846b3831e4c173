package sqv

// Kind identifies which variant of a Value is active.
type Kind int

const (
	KindNil Kind = iota
	KindArray
	KindBoolean
	KindScalar
	KindString
)

// String returns the name of the kind, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindArray:
		return "array"
	case KindBoolean:
		return "boolean"
	case KindScalar:
		return "scalar"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is an SQF value: exactly one of nil, array, boolean, scalar or
// string. The zero Value is Nil. Scalars are stored as 32-bit floats,
// matching the SQF runtime's number representation.
type Value struct {
	kind Kind
	num  float32
	str  string
	b    bool
	arr  []Value
}

// Nil returns the nil Value. Identical to the zero Value.
func Nil() Value { return Value{} }

// Scalar returns a scalar Value. The argument is narrowed to a 32-bit
// float, which is how the SQF runtime stores all numbers.
func Scalar(f float64) Value { return Value{kind: KindScalar, num: float32(f)} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Str returns a string Value. The text may contain arbitrary bytes; no
// encoding is enforced.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array Value holding the given elements.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// ArrayOf returns an array Value backed by the given slice. The slice
// is not copied; use Clone if independent ownership is needed.
func ArrayOf(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// Kind returns the active variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is nil.
func (v Value) IsNil() bool { return v.kind == KindNil }

// IsArray reports whether v is an array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsBool reports whether v is a boolean.
func (v Value) IsBool() bool { return v.kind == KindBoolean }

// IsScalar reports whether v is a number.
func (v Value) IsScalar() bool { return v.kind == KindScalar }

// IsString reports whether v is a string.
func (v Value) IsString() bool { return v.kind == KindString }

// Float returns the scalar payload, or 0 if v is not a scalar.
func (v Value) Float() float32 {
	if v.kind != KindScalar {
		return 0
	}
	return v.num
}

// Bool returns the boolean payload, or false if v is not a boolean.
func (v Value) Bool() bool {
	if v.kind != KindBoolean {
		return false
	}
	return v.b
}

// Text returns the string payload, or "" if v is not a string.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Items returns the array payload, or nil if v is not an array. The
// returned slice aliases v's storage; mutating its elements mutates v.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the number of elements if v is an array, 0 otherwise.
func (v Value) Len() int {
	if v.kind != KindArray {
		return 0
	}
	return len(v.arr)
}

// At returns a pointer to the i'th element of an array Value, through
// which the element may be mutated in place. Calling At on a non-array
// Value or with an out-of-range index is a precondition violation and
// panics; callers must guarantee array-ness and bounds themselves.
func (v *Value) At(i int) *Value {
	if v.kind != KindArray {
		panic("sqv: At called on non-array value")
	}
	return &v.arr[i]
}

// Append appends elements to an array Value in place. Appending to a
// non-array Value is a precondition violation and panics.
func (v *Value) Append(elems ...Value) {
	if v.kind != KindArray {
		panic("sqv: Append called on non-array value")
	}
	v.arr = append(v.arr, elems...)
}

// Coerce rewrites v in place to the given kind. If the kind already
// matches, v is unchanged; otherwise the payload is reset to the zero
// value of the requested kind. The conversion methods (Float, Bool,
// Text, Items) never mutate; Coerce is the explicit spelling of the
// "read as T, becoming T" access the SQF runtime performs. A Value
// shared between goroutines must not be Coerced concurrently.
func (v *Value) Coerce(k Kind) *Value {
	if v.kind == k {
		return v
	}
	*v = Value{kind: k}
	return v
}

// Clone returns a deep copy of v. Array elements are copied
// recursively, so the clone shares no storage with v.
func (v Value) Clone() Value {
	if v.kind != KindArray {
		return v
	}
	elems := make([]Value, len(v.arr))
	for i, e := range v.arr {
		elems[i] = e.Clone()
	}
	return Value{kind: KindArray, arr: elems}
}
