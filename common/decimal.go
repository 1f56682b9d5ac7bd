package common

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal rounds r to the given number of decimal places.
func (r Rational) Decimal(places int32) decimal.Decimal {
	n := decimal.NewFromInt(r.num)
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(r.Denominator()), 0)
	return n.DivRound(d, places)
}

func (r Rational) DecimalString(places int32) string {
	return r.Decimal(places).StringFixed(places)
}
