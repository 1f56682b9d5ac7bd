package calc

import (
	"fmt"
	"strconv"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
)

type Calculator struct {
	Strict    bool
	Precision int32
}

// Result is a value for arithmetic operations and a boolean for
// comparisons, never both.
type Result struct {
	Operation Operation        `json:"operation"`
	Left      common.Rational  `json:"left"`
	Right     common.Rational  `json:"right"`
	Value     *common.Rational `json:"value,omitempty"`
	Boolean   *bool            `json:"boolean,omitempty"`
	Float     float64          `json:"float"`
	Decimal   string           `json:"decimal,omitempty"`
}

func NewCalculator(custom *config.Custom) *Calculator {
	return &Calculator{
		Strict:    custom.Arithmetic.Strict,
		Precision: custom.Arithmetic.Precision,
	}
}

// Evaluate applies op to a and b, b is ignored by unary operations.
func (c *Calculator) Evaluate(op Operation, a, b common.Rational) (*Result, error) {
	res := &Result{Operation: op, Left: a, Right: b}
	if op.IsUnary() {
		res.Right = common.Zero()
	}

	if op.IsComparison() {
		v := compare(op, a, b)
		res.Boolean = &v
		logger.Debugf("calc %s %s %s => %t\n", a, op.Symbol(), b, v)
		return res, nil
	}

	v, err := c.arithmetic(op, a, b)
	if err != nil {
		logger.Verbosef("calc %s %s %s => %v\n", a, op.Symbol(), b, err)
		return nil, err
	}
	res.Value = &v
	res.Float = v.Float64()
	res.Decimal = v.DecimalString(c.Precision)
	logger.Debugf("calc %s %s %s => %s\n", a, op.Symbol(), b, v)
	return res, nil
}

func (c *Calculator) arithmetic(op Operation, a, b common.Rational) (common.Rational, error) {
	if c.Strict {
		switch op {
		case OperationAdd:
			return a.CheckedAdd(b)
		case OperationSub:
			return a.CheckedSub(b)
		case OperationMul:
			return a.CheckedMul(b)
		case OperationDiv:
			return a.CheckedDiv(b)
		case OperationNeg:
			return a.CheckedNeg()
		}
		return common.Rational{}, fmt.Errorf("unknown operation %s", op)
	}

	switch op {
	case OperationAdd:
		return a.Add(b), nil
	case OperationSub:
		return a.Sub(b), nil
	case OperationMul:
		return a.Mul(b), nil
	case OperationDiv:
		return a.Div(b), nil
	case OperationNeg:
		return a.Neg(), nil
	}
	return common.Rational{}, fmt.Errorf("unknown operation %s", op)
}

func compare(op Operation, a, b common.Rational) bool {
	switch op {
	case OperationEqual:
		return a.Equal(b)
	case OperationNotEqual:
		return a.NotEqual(b)
	case OperationLess:
		return a.Less(b)
	case OperationLessOrEqual:
		return a.LessOrEqual(b)
	case OperationGreater:
		return a.Greater(b)
	case OperationGreaterOrEqual:
		return a.GreaterOrEqual(b)
	}
	panic(op)
}

// FormatFloat prints six significant digits like a default console stream.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
