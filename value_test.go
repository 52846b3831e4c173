package sqv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sqv "github.com/sqf-tools/go-sqv"
)

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    sqv.Value
		kind sqv.Kind
	}{
		{"zero value is nil", sqv.Value{}, sqv.KindNil},
		{"Nil", sqv.Nil(), sqv.KindNil},
		{"Scalar", sqv.Scalar(1.5), sqv.KindScalar},
		{"Bool", sqv.Bool(true), sqv.KindBoolean},
		{"Str", sqv.Str("hi"), sqv.KindString},
		{"Array", sqv.Array(sqv.Scalar(1)), sqv.KindArray},
		{"ArrayOf", sqv.ArrayOf([]sqv.Value{}), sqv.KindArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.v.Kind())
			require.Equal(t, tt.kind == sqv.KindNil, tt.v.IsNil())
			require.Equal(t, tt.kind == sqv.KindScalar, tt.v.IsScalar())
			require.Equal(t, tt.kind == sqv.KindBoolean, tt.v.IsBool())
			require.Equal(t, tt.kind == sqv.KindString, tt.v.IsString())
			require.Equal(t, tt.kind == sqv.KindArray, tt.v.IsArray())
		})
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "nil", sqv.KindNil.String())
	require.Equal(t, "array", sqv.KindArray.String())
	require.Equal(t, "boolean", sqv.KindBoolean.String())
	require.Equal(t, "scalar", sqv.KindScalar.String())
	require.Equal(t, "string", sqv.KindString.String())
}

func TestValue_Conversions(t *testing.T) {
	t.Run("matching variants return the payload", func(t *testing.T) {
		require.Equal(t, float32(1.5), sqv.Scalar(1.5).Float())
		require.True(t, sqv.Bool(true).Bool())
		require.Equal(t, "hi", sqv.Str("hi").Text())
		require.Len(t, sqv.Array(sqv.Scalar(1), sqv.Scalar(2)).Items(), 2)
	})

	t.Run("scalars are narrowed to 32-bit floats", func(t *testing.T) {
		require.Equal(t, float32(0.1), sqv.Scalar(0.1).Float())
	})

	t.Run("mismatched variants return the zero value", func(t *testing.T) {
		v := sqv.Str("not a number")
		require.Equal(t, float32(0), v.Float())
		require.False(t, v.Bool())
		require.Nil(t, v.Items())
		require.Equal(t, "", sqv.Scalar(1).Text())
	})
}

func TestValue_At(t *testing.T) {
	t.Run("returns a mutable element pointer", func(t *testing.T) {
		v := sqv.Array(sqv.Scalar(1), sqv.Scalar(2))
		*v.At(1) = sqv.Str("two")
		require.Equal(t, "two", v.At(1).Text())
		require.Equal(t, float32(1), v.At(0).Float())
	})

	t.Run("panics on non-array", func(t *testing.T) {
		v := sqv.Scalar(1)
		require.Panics(t, func() { v.At(0) })
	})

	t.Run("panics out of range", func(t *testing.T) {
		v := sqv.Array(sqv.Scalar(1))
		require.Panics(t, func() { v.At(1) })
	})
}

func TestValue_Append(t *testing.T) {
	v := sqv.Array()
	v.Append(sqv.Scalar(1), sqv.Str("two"))
	require.Equal(t, 2, v.Len())
	require.Equal(t, 0, sqv.Bool(true).Len())

	nv := sqv.Nil()
	require.Panics(t, func() { nv.Append(sqv.Scalar(1)) })
}

func TestValue_Coerce(t *testing.T) {
	t.Run("mismatch rewrites to the zero payload", func(t *testing.T) {
		v := sqv.Str("hi")
		v.Coerce(sqv.KindScalar)
		require.True(t, v.IsScalar())
		require.Equal(t, float32(0), v.Float())
	})

	t.Run("matching kind is untouched", func(t *testing.T) {
		v := sqv.Bool(true)
		v.Coerce(sqv.KindBoolean)
		require.True(t, v.Bool())
	})
}

func TestValue_Clone(t *testing.T) {
	v := sqv.Array(sqv.Array(sqv.Str("a")), sqv.Scalar(1))
	c := v.Clone()
	*c.At(0).At(0) = sqv.Str("b")
	require.Equal(t, "a", v.At(0).At(0).Text(), "clone must not share array storage")
	require.Equal(t, "b", c.At(0).At(0).Text())
	require.True(t, v.Equal(sqv.Array(sqv.Array(sqv.Str("a")), sqv.Scalar(1))))
}
