package numbers

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		integer bool
	}{
		{"42", "42", true},
		{"+5", "5", true},
		{"-3", "-3", true},
		{"14.1", "141/10", false},
		{"0.50", "1/2", false},
		{"2.0", "2", true},
		{"007", "7", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := ParseDecimal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
			assert.Equal(t, tt.integer, q.IsInteger())
		})
	}
}

func TestParseDecimalInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.", ".5", "1.2.3", "1e5", "1/2", "--1", "$5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDecimal(in)
			require.ErrorIs(t, err, ErrInvalidDecimal)
		})
	}
}

func TestNewRational(t *testing.T) {
	q, err := NewRational(big.NewInt(6), big.NewInt(-4))
	require.NoError(t, err)
	assert.Equal(t, "-3/2", q.String())
	assert.Equal(t, int64(-3), q.Num().Int64())
	assert.Equal(t, int64(2), q.Den().Int64())

	_, err = NewRational(big.NewInt(1), big.NewInt(0))
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestRationalZeroValue(t *testing.T) {
	var q Rational
	assert.True(t, q.IsInteger())
	assert.Equal(t, "0", q.String())
	assert.Equal(t, int64(1), q.Den().Int64())
}

func TestRationalMulInt(t *testing.T) {
	million := big.NewInt(1_000_000)

	q, err := ParseDecimal("14.1")
	require.NoError(t, err)
	p := q.MulInt(million)
	assert.True(t, p.IsInteger())
	assert.Equal(t, "14100000", p.String())

	q, err = ParseDecimal("0.1234567")
	require.NoError(t, err)
	p = q.MulInt(million)
	assert.False(t, p.IsInteger())
	assert.Equal(t, "1234567/10", p.String())

	// the receiver is not modified
	assert.Equal(t, "1234567/10000000", q.String())
}

func TestRationalAccessorsCopy(t *testing.T) {
	q, err := ParseDecimal("3")
	require.NoError(t, err)
	q.Num().SetInt64(99)
	assert.Equal(t, "3", q.String())
}
