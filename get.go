package sqv

// Payload is the set of Go types an SQF value can carry: a 32-bit
// float, text, a boolean, or an ordered sequence of Values. Nil has no
// payload type; use Value.IsNil.
type Payload interface {
	float32 | string | bool | []Value
}

// Is reports whether v's active variant carries payload type T. It is
// the generic form of the per-kind predicates.
func Is[T Payload](v Value) bool {
	var zero T
	switch any(zero).(type) {
	case float32:
		return v.IsScalar()
	case string:
		return v.IsString()
	case bool:
		return v.IsBool()
	case []Value:
		return v.IsArray()
	default:
		return false
	}
}

// Get returns v's payload as type T, or the zero value of T when the
// variant does not match. It is the generic form of the per-kind
// conversions and shares their permissive-narrowing contract.
func Get[T Payload](v Value) T {
	var out T
	switch p := any(&out).(type) {
	case *float32:
		*p = v.Float()
	case *string:
		*p = v.Text()
	case *bool:
		*p = v.Bool()
	case *[]Value:
		*p = v.Items()
	}
	return out
}
