package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqf-tools/go-sqv/internal/scanner"
)

func TestScanner_Cursor(t *testing.T) {
	s := scanner.New([]byte("ab"))

	require.False(t, s.EOF())
	require.Equal(t, byte('a'), s.Peek())
	require.Equal(t, 0, s.Pos())

	require.Equal(t, byte('a'), s.Next())
	require.Equal(t, byte('b'), s.Next())
	require.True(t, s.EOF())

	// Reads past the end are clamped, never panic.
	require.Equal(t, byte(0), s.Peek())
	require.Equal(t, byte(0), s.Next())
	s.Advance(10)
	require.Equal(t, 2, s.Pos())
	require.Empty(t, s.Rest())
}

func TestScanner_HasPrefix(t *testing.T) {
	s := scanner.New([]byte("true]"))
	require.True(t, s.HasPrefix("true"))
	require.False(t, s.HasPrefix("truex"))
	require.False(t, s.HasPrefix("true]]"))
	s.Advance(4)
	require.True(t, s.HasPrefix("]"))
}

func TestScanner_SkipSpace(t *testing.T) {
	s := scanner.New([]byte(" \t\r\n x"))
	s.SkipSpace()
	require.Equal(t, byte('x'), s.Peek())
	s.Next()
	s.SkipSpace()
	require.True(t, s.EOF())
}

func TestFloatPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  float32
		n     int
	}{
		{"0", 0, 1},
		{"42,", 42, 2},
		{"-12.5e2]", -1250, 7},
		{"+3", 3, 2},
		{".5x", 0.5, 2},
		{"5.", 5, 2},
		{"1e5 ", 100000, 3},
		{"1E+2", 100, 4},
		// An exponent marker without digits is not part of the literal.
		{"1e", 1, 1},
		{"1e+", 1, 1},
		{"2.5ex", 2.5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, n, err := scanner.FloatPrefix([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.n, n)
		})
	}

	t.Run("no digits", func(t *testing.T) {
		for _, input := range []string{"", "+", "-", ".", "+.", "-.x", "e5"} {
			_, _, err := scanner.FloatPrefix([]byte(input))
			require.ErrorIs(t, err, scanner.ErrNoFloat, "input %q", input)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, err := scanner.FloatPrefix([]byte("1e99999"))
		require.Error(t, err)
		require.NotErrorIs(t, err, scanner.ErrNoFloat)
	})
}
