package common

import "math"

// mulOverflows reports whether a*b is not representable as int64.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return true
	}
	p := a * b
	return p/b != a
}

// addOverflows reports whether a+b wraps around.
func addOverflows(a, b int64) bool {
	s := a + b
	if a > 0 && b > 0 && s <= 0 {
		return true
	}
	return a < 0 && b < 0 && s >= 0
}

// mulDenOverflows checks a numerator against a denominator factor, any
// denominator above math.MaxInt64 is outside the signed width.
func mulDenOverflows(a int64, d uint64) bool {
	if d > math.MaxInt64 {
		return a != 0
	}
	return mulOverflows(a, int64(d))
}

// mulDensOverflow checks a denominator product against the signed width.
func mulDensOverflow(a, b uint64) bool {
	if a > math.MaxInt64 || b > math.MaxInt64 {
		return true
	}
	return mulOverflows(int64(a), int64(b))
}

// gcd accepts zero on either side, gcd(0, d) is d.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs64 is exact for math.MinInt64 as well.
func abs64(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// scaleDown divides n by g through its magnitude, so that g may exceed
// math.MaxInt64 when n is math.MinInt64.
func scaleDown(n int64, g uint64) int64 {
	m := abs64(n) / g
	if n < 0 {
		return -int64(m)
	}
	return int64(m)
}
