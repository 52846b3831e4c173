package sqv

// Equal reports whether v and other are structurally equal: the kinds
// match and, for arrays, lengths match and all elements are pairwise
// Equal in order. String comparison is case-sensitive.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBoolean:
		return v.b == other.b
	case KindScalar:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// EqualFold is Equal with case-insensitive string comparison at the
// top level. The fold is byte-wise ASCII, matching the SQF runtime's
// locale-independent lowercase comparison.
//
// Array elements are compared with Equal, not EqualFold: strings
// nested inside arrays remain case-sensitive. This asymmetry is
// faithful to the reference behavior and is kept deliberately.
func (v Value) EqualFold(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return asciiFoldEqual(v.str, other.str)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return v.Equal(other)
	}
}

func asciiFoldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
