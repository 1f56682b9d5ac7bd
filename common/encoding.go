package common

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const rationalEncodingSize = 16

type rationalJSON struct {
	Numerator   int64  `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// FromParts normalizes a numerator and an unsigned denominator, a zero
// denominator gives the canonical zero like NewRational.
func FromParts(num int64, den uint64) Rational {
	return normalize(num, den)
}

func (r Rational) MarshalMsgpack() ([]byte, error) {
	b := make([]byte, rationalEncodingSize)
	binary.BigEndian.PutUint64(b[:8], uint64(r.num))
	binary.BigEndian.PutUint64(b[8:], r.Denominator())
	return b, nil
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != rationalEncodingSize {
		return fmt.Errorf("invalid rational size %d", len(data))
	}
	num := int64(binary.BigEndian.Uint64(data[:8]))
	den := binary.BigEndian.Uint64(data[8:])
	*r = FromParts(num, den)
	return nil
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(rationalJSON{
		Numerator:   r.num,
		Denominator: r.Denominator(),
	})
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	var v rationalJSON
	err := json.Unmarshal(b, &v)
	if err != nil {
		return err
	}
	*r = FromParts(v.Numerator, v.Denominator)
	return nil
}
