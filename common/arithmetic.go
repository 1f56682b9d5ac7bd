package common

import (
	"math"
	"math/bits"
)

func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

func (r Rational) CheckedNeg() (Rational, error) {
	if r.num == math.MinInt64 {
		return Rational{}, ErrOverflow
	}
	return r.Neg(), nil
}

func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}
	return r
}

// Add returns r+x. When the direct cross products would overflow it falls
// back to reducing the denominators by their gcd first, and if even that
// overflows the result wraps. Use CheckedAdd to detect it.
func (r Rational) Add(x Rational) Rational {
	if v, ok := addFast(r, x); ok {
		return v
	}
	v, _ := addSafe(r, x)
	return v
}

func (r Rational) CheckedAdd(x Rational) (Rational, error) {
	if v, ok := addFast(r, x); ok {
		return v, nil
	}
	v, ok := addSafe(r, x)
	if !ok {
		return Rational{}, ErrOverflow
	}
	return v, nil
}

func (r Rational) Sub(x Rational) Rational {
	return r.Add(x.Neg())
}

func (r Rational) CheckedSub(x Rational) (Rational, error) {
	n, err := x.CheckedNeg()
	if err != nil {
		return Rational{}, err
	}
	return r.CheckedAdd(n)
}

func (r Rational) Mul(x Rational) Rational {
	if v, ok := mulFast(r, x); ok {
		return v
	}
	v, _ := mulSafe(r, x)
	return v
}

func (r Rational) CheckedMul(x Rational) (Rational, error) {
	if v, ok := mulFast(r, x); ok {
		return v, nil
	}
	v, ok := mulSafe(r, x)
	if !ok {
		return Rational{}, ErrOverflow
	}
	return v, nil
}

// Div returns r/x. Dividing by a zero fraction yields the canonical zero
// instead of failing, CheckedDiv reports ErrDivisionByZero for it.
func (r Rational) Div(x Rational) Rational {
	if x.num == 0 {
		return Rational{}
	}
	inv, _ := reciprocal(x)
	return r.Mul(inv)
}

func (r Rational) CheckedDiv(x Rational) (Rational, error) {
	if x.num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	inv, ok := reciprocal(x)
	if !ok {
		return Rational{}, ErrOverflow
	}
	return r.CheckedMul(inv)
}

// Reciprocal returns 1/r, and the canonical zero for a zero r.
func (r Rational) Reciprocal() Rational {
	if r.num == 0 {
		return Rational{}
	}
	inv, _ := reciprocal(r)
	return inv
}

func reciprocal(r Rational) (Rational, bool) {
	d, m := r.Denominator(), abs64(r.num)
	if r.num < 0 {
		return normalize(-int64(d), m), d <= 1<<63
	}
	return normalize(int64(d), m), d <= math.MaxInt64
}

func addFast(a, b Rational) (Rational, bool) {
	ad, bd := a.Denominator(), b.Denominator()
	if mulDenOverflows(a.num, bd) || mulDenOverflows(b.num, ad) || mulDensOverflow(ad, bd) {
		return Rational{}, false
	}
	t1, t2 := a.num*int64(bd), b.num*int64(ad)
	if addOverflows(t1, t2) {
		return Rational{}, false
	}
	return normalize(t1+t2, ad*bd), true
}

// addSafe cross multiplies with the denominators reduced by their gcd,
// which shrinks the terms but does not rule out overflow.
func addSafe(a, b Rational) (Rational, bool) {
	ad, bd := a.Denominator(), b.Denominator()
	g := gcd(ad, bd)
	sa, sb := ad/g, bd/g

	ok := !mulDenOverflows(a.num, sb) && !mulDenOverflows(b.num, sa)
	t1, t2 := a.num*int64(sb), b.num*int64(sa)
	ok = ok && !addOverflows(t1, t2)
	hi, den := bits.Mul64(ad, sb)
	ok = ok && hi == 0
	return normalize(t1+t2, den), ok
}

func mulFast(a, b Rational) (Rational, bool) {
	ad, bd := a.Denominator(), b.Denominator()
	if mulOverflows(a.num, b.num) || mulDensOverflow(ad, bd) {
		return Rational{}, false
	}
	return normalize(a.num*b.num, ad*bd), true
}

// mulSafe cancels each numerator against the other denominator before
// multiplying.
func mulSafe(a, b Rational) (Rational, bool) {
	an, ad := a.num, a.Denominator()
	bn, bd := b.num, b.Denominator()
	g1 := gcd(abs64(an), bd)
	g2 := gcd(abs64(bn), ad)
	an, bd = scaleDown(an, g1), bd/g1
	bn, ad = scaleDown(bn, g2), ad/g2

	ok := !mulOverflows(an, bn)
	hi, den := bits.Mul64(ad, bd)
	ok = ok && hi == 0
	return normalize(an*bn, den), ok
}
