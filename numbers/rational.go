package numbers

import (
	"fmt"
	"math/big"
	"regexp"
)

var (
	decimalPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	literalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// isLiteral reports whether s is an unsigned arabic numeral with at most one
// decimal point.
func isLiteral(s string) bool {
	return s != "" && literalPattern.MatchString(s)
}

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. The zero value is 0/1.
type Rational struct {
	r big.Rat
}

// NewRational returns num/den reduced to lowest terms.
func NewRational(num, den *big.Int) (Rational, error) {
	var q Rational
	if den.Sign() == 0 {
		return q, ErrZeroDenominator
	}
	q.r.SetFrac(num, den)
	return q, nil
}

// ParseDecimal parses a decimal literal such as "14.1" or "-3" exactly.
func ParseDecimal(s string) (Rational, error) {
	var q Rational
	if !decimalPattern.MatchString(s) {
		return q, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	if _, ok := q.r.SetString(s); !ok {
		return q, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return q, nil
}

// MulInt returns q scaled by m.
func (q Rational) MulInt(m *big.Int) Rational {
	var p Rational
	p.r.Mul(&q.r, new(big.Rat).SetInt(m))
	return p
}

// IsInteger reports whether the denominator is 1.
func (q Rational) IsInteger() bool {
	return q.r.IsInt()
}

// Num returns a copy of the numerator.
func (q Rational) Num() *big.Int {
	return new(big.Int).Set(q.r.Num())
}

// Den returns a copy of the denominator, always positive.
func (q Rational) Den() *big.Int {
	return new(big.Int).Set(q.r.Denom())
}

func (q Rational) String() string {
	if q.IsInteger() {
		return q.r.Num().String()
	}
	return q.r.String()
}
