package calc

import (
	"fmt"
	"io"

	"github.com/MixinNetwork/fraction/common"
)

// Report writes both fractions, every arithmetic result with its float
// approximation, and the six comparisons.
func (c *Calculator) Report(w io.Writer, a, b common.Rational) error {
	lines := []string{
		"Fractions:",
		fmt.Sprintf("Fraction 1: %s", a),
		fmt.Sprintf("Fraction 2: %s", b),
		"",
		"Arithmetic:",
	}

	for _, op := range ArithmeticOperations {
		if op == OperationDiv && b.IsZero() {
			lines = append(lines, fmt.Sprintf("%s / %s = error: division by zero", a, b))
			continue
		}
		res, err := c.Evaluate(op, a, b)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s %s %s = error: %v", a, op.Symbol(), b, err))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s = %s = %s", a, op.Symbol(), b, res.Value, FormatFloat(res.Float)))
	}

	lines = append(lines, "", "Comparison:")
	for _, op := range ComparisonOperations {
		res, err := c.Evaluate(op, a, b)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("%s %-2s %s : %t", a, op.Symbol(), b, *res.Boolean))
	}

	for _, l := range lines {
		_, err := fmt.Fprintln(w, l)
		if err != nil {
			return err
		}
	}
	return nil
}
