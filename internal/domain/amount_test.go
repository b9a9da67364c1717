package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmountRoundsToFourDigits(t *testing.T) {
	testcases := []struct {
		in       string
		expected string
	}{
		{"1.23456", "1.2346"},
		{"1.23454", "1.2345"},
		{"2.00005", "2.0001"}, // ties round away from zero
		{"-2.00005", "-2.0001"},
		{"0.00001", "0"},
		{"1.5", "1.5"},
		{"100", "100"},
		{"-0.0001", "-0.0001"},
	}

	for _, tc := range testcases {
		amount, err := ParseAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.expected, amount.String(), "input %q", tc.in)
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "ten", "12,34", "1.2.3"} {
		_, err := ParseAmount(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := mustAmount(t, "100")
	b := mustAmount(t, "0.0001")

	require.Equal(t, "100.0001", a.Add(b).String())
	require.Equal(t, "99.9999", a.Sub(b).String())
	require.True(t, a.Sub(a).IsZero())
	require.Equal(t, "-100", a.Neg().String())
	require.True(t, b.Neg().IsNegative())
	require.False(t, b.IsNegative())
	require.True(t, b.LessThan(a))
	require.False(t, a.LessThan(a))
}

func TestAmountZeroValueIsZero(t *testing.T) {
	var zero Amount
	require.True(t, zero.IsZero())
	require.False(t, zero.IsNegative())
	require.Equal(t, "0", zero.String())
}

func TestAmountEqualIgnoresRepresentation(t *testing.T) {
	a := mustAmount(t, "1.5")
	b := mustAmount(t, "1.5000")
	require.True(t, a.Equal(b))

	// a sum that lands on the same value compares equal too
	c := mustAmount(t, "1").Add(mustAmount(t, "0.5"))
	require.True(t, a.Equal(c))
}

func mustAmount(t *testing.T, s string) Amount {
	t.Helper()
	a, err := ParseAmount(s)
	require.NoError(t, err)
	return a
}
