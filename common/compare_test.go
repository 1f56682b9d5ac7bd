package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	a, b := NewRational(1, 3), NewRational(1, 2)
	assert.True(a.Less(b))
	assert.True(a.LessOrEqual(b))
	assert.False(a.Greater(b))
	assert.False(a.GreaterOrEqual(b))
	assert.True(a.NotEqual(b))
	assert.False(a.Equal(b))
	assert.True(b.LessOrEqual(b))
	assert.True(b.GreaterOrEqual(b))
	assert.False(b.Less(b))
	assert.False(b.Greater(b))
	assert.True(NewRational(-1, -2).Equal(b))

	assert.Equal(-1, a.Cmp(b))
	assert.Equal(1, b.Cmp(a))
	assert.Equal(0, b.Cmp(NewRational(2, 4)))
	assert.Equal(0, Zero().Cmp(Rational{}))
	assert.Equal(-1, NewRational(-1, 2).Cmp(Zero()))
	assert.Equal(1, Zero().Cmp(NewRational(-1, 2)))
	assert.Equal(-1, NewRational(-1, 2).Cmp(NewRational(-1, 3)))
	assert.True(NewRational(-1, 2).Less(NewRational(1, 1<<62)))
}

func TestCompareWide(t *testing.T) {
	assert := assert.New(t)

	a := NewRational(math.MaxInt64-1, math.MaxInt64)
	b := NewRational(math.MaxInt64-2, math.MaxInt64-1)
	assert.True(b.Less(a))
	assert.True(a.Greater(b))
	assert.Equal(1, a.Cmp(b))
	assert.True(a.Neg().Less(b.Neg()))
	assert.Equal(-1, a.Neg().Cmp(b.Neg()))

	min, max := NewInteger(math.MinInt64), NewInteger(math.MaxInt64)
	assert.True(min.Less(max))
	assert.True(min.Less(NewRational(math.MinInt64+1, 1)))
	assert.True(FromParts(1, math.MaxUint64).Less(FromParts(1, math.MaxUint64-1)))
	assert.True(FromParts(math.MaxInt64, 1<<63).Less(NewInteger(1)))
}
