package common

import "math/bits"

func (r Rational) Equal(x Rational) bool {
	return r.num == x.num && r.Denominator() == x.Denominator()
}

func (r Rational) NotEqual(x Rational) bool {
	return !r.Equal(x)
}

func (r Rational) Less(x Rational) bool {
	return r.Cmp(x) < 0
}

func (r Rational) LessOrEqual(x Rational) bool {
	return r.Less(x) || r.Equal(x)
}

func (r Rational) Greater(x Rational) bool {
	return !r.LessOrEqual(x)
}

func (r Rational) GreaterOrEqual(x Rational) bool {
	return !r.Less(x)
}

// Cmp returns -1, 0 or 1 as r is less than, equal to or greater than x.
// The cross products are taken 128 bits wide so the ordering is exact for
// every pair of values.
func (r Rational) Cmp(x Rational) int {
	rs, xs := r.Sign(), x.Sign()
	if rs != xs {
		if rs < xs {
			return -1
		}
		return 1
	}
	if rs == 0 {
		return 0
	}

	lh, ll := bits.Mul64(abs64(r.num), x.Denominator())
	rh, rl := bits.Mul64(abs64(x.num), r.Denominator())
	c := 0
	switch {
	case lh < rh || (lh == rh && ll < rl):
		c = -1
	case lh > rh || (lh == rh && ll > rl):
		c = 1
	}
	return c * rs
}
