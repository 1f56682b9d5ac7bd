package common

import (
	"errors"
	"math"
	"strconv"
)

var (
	ErrOverflow        = errors.New("rational overflow")
	ErrDivisionByZero  = errors.New("rational division by zero")
	ErrZeroDenominator = errors.New("rational zero denominator")
)

// Rational is an exact fraction with a signed 64-bit numerator and an
// unsigned denominator, always kept in lowest terms. The sign lives in
// the numerator and zero is represented as 0/1.
//
// Values are immutable, every operation returns a new Rational. Two
// normalized values can be compared with ==, and the zero value of the
// type is the canonical zero.
type Rational struct {
	num int64
	den uint64
}

// Zero returns the canonical zero 0/1.
func Zero() Rational {
	return Rational{}
}

// NewInteger returns n/1, zero maps to the canonical zero.
func NewInteger(n int64) Rational {
	if n == 0 {
		return Rational{}
	}
	return Rational{num: n, den: 1}
}

// NewRational builds num/den in lowest terms. A zero denominator is not an
// error, it yields the canonical zero. Callers that need to reject it should
// use NewChecked.
func NewRational(num, den int64) Rational {
	if den == 0 {
		return Rational{}
	}
	return normalizeParts((num < 0) != (den < 0), abs64(num), abs64(den))
}

// NewChecked is NewRational with errors: ErrZeroDenominator when den is zero,
// ErrOverflow when the reduced positive numerator does not fit in int64.
func NewChecked(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	m, d := abs64(num), abs64(den)
	if (num < 0) == (den < 0) && m/gcd(m, d) > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	return NewRational(num, den), nil
}

// normalize reduces a signed numerator over an unsigned denominator.
func normalize(num int64, den uint64) Rational {
	return normalizeParts(num < 0, abs64(num), den)
}

// normalizeParts reduces the magnitude m over den and applies the sign last,
// only a positive magnitude of 1<<63 wraps.
func normalizeParts(neg bool, m, den uint64) Rational {
	if m == 0 || den == 0 {
		return Rational{}
	}
	g := gcd(m, den)
	m, den = m/g, den/g
	if neg {
		return Rational{num: -int64(m), den: den}
	}
	return Rational{num: int64(m), den: den}
}

func (r Rational) Numerator() int64 {
	return r.num
}

// Denominator is always positive, the canonical zero reports 1.
func (r Rational) Denominator() uint64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

func (r Rational) IsZero() bool {
	return r.num == 0
}

func (r Rational) IsInteger() bool {
	return r.Denominator() == 1
}

// Float64 is an approximation for display only.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

func (r Rational) String() string {
	n := strconv.FormatInt(r.num, 10)
	if r.IsInteger() {
		return n
	}
	return n + "/" + strconv.FormatUint(r.Denominator(), 10)
}
