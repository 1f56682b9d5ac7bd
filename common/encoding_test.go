package common

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalMsgpack(t *testing.T) {
	assert := assert.New(t)

	r := NewRational(-1, 2)
	p, err := r.MarshalMsgpack()
	assert.Nil(err)
	assert.Equal("ffffffffffffffff0000000000000002", hex.EncodeToString(p))
	var v Rational
	err = v.UnmarshalMsgpack(p)
	assert.Nil(err)
	assert.Equal(r, v)

	err = v.UnmarshalMsgpack(p[:8])
	assert.NotNil(err)

	p, err = hex.DecodeString("00000000000000060000000000000004")
	assert.Nil(err)
	err = v.UnmarshalMsgpack(p)
	assert.Nil(err)
	assert.Equal("3/2", v.String())

	p = MsgpackMarshalPanic(NewRational(1, 2))
	assert.Equal("d800", hex.EncodeToString(p[:2]))
	err = MsgpackUnmarshal(p, &v)
	assert.Nil(err)
	assert.Equal("1/2", v.String())

	p = MsgpackMarshalPanic(Zero())
	err = MsgpackUnmarshal(p, &v)
	assert.Nil(err)
	assert.Equal(Zero(), v)

	type pair struct {
		Left  Rational
		Right Rational
	}
	in := pair{Left: NewInteger(math.MinInt64), Right: FromParts(7, math.MaxUint64)}
	data := CompressMsgpackMarshalPanic(in)
	assert.Equal(CompressionVersionZero, data[:4])
	var out pair
	err = DecompressMsgpackUnmarshal(data, &out)
	assert.Nil(err)
	assert.Equal(in, out)

	out = pair{}
	err = DecompressMsgpackUnmarshal(MsgpackMarshalPanic(in), &out)
	assert.Nil(err)
	assert.Equal(in, out)
}

func TestRationalJSON(t *testing.T) {
	assert := assert.New(t)

	j, err := json.Marshal(NewRational(1, -2))
	assert.Nil(err)
	assert.Equal(`{"numerator":-1,"denominator":2}`, string(j))
	j, err = json.Marshal(Rational{})
	assert.Nil(err)
	assert.Equal(`{"numerator":0,"denominator":1}`, string(j))

	var r Rational
	err = json.Unmarshal([]byte(`{"numerator":2,"denominator":4}`), &r)
	assert.Nil(err)
	assert.Equal(NewRational(1, 2), r)
	err = json.Unmarshal([]byte(`{"numerator":3,"denominator":0}`), &r)
	assert.Nil(err)
	assert.Equal(Zero(), r)
	err = json.Unmarshal([]byte(`{"numerator":"x"}`), &r)
	assert.NotNil(err)
}
