package calc

import (
	"fmt"
	"strings"
)

type Operation string

const (
	OperationAdd            Operation = "add"
	OperationSub            Operation = "sub"
	OperationMul            Operation = "mul"
	OperationDiv            Operation = "div"
	OperationNeg            Operation = "neg"
	OperationEqual          Operation = "eq"
	OperationNotEqual       Operation = "ne"
	OperationLess           Operation = "lt"
	OperationLessOrEqual    Operation = "le"
	OperationGreater        Operation = "gt"
	OperationGreaterOrEqual Operation = "ge"
)

var operationSymbols = map[Operation]string{
	OperationAdd:            "+",
	OperationSub:            "-",
	OperationMul:            "*",
	OperationDiv:            "/",
	OperationNeg:            "neg",
	OperationEqual:          "==",
	OperationNotEqual:       "!=",
	OperationLess:           "<",
	OperationLessOrEqual:    "<=",
	OperationGreater:        ">",
	OperationGreaterOrEqual: ">=",
}

var (
	ArithmeticOperations = []Operation{OperationAdd, OperationSub, OperationMul, OperationDiv}
	ComparisonOperations = []Operation{
		OperationEqual, OperationNotEqual,
		OperationLess, OperationGreater,
		OperationLessOrEqual, OperationGreaterOrEqual,
	}
)

// ParseOperation accepts both the names and the symbols, case insensitive.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, sym := range operationSymbols {
		if s == string(op) || s == sym {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %s", s)
}

func (op Operation) Symbol() string {
	return operationSymbols[op]
}

func (op Operation) IsComparison() bool {
	for _, c := range ComparisonOperations {
		if c == op {
			return true
		}
	}
	return false
}

func (op Operation) IsUnary() bool {
	return op == OperationNeg
}
