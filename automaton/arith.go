package automaton

import "fmt"

// Evaluate applies an arithmetic operator (+, -, * or /) to two integers.
// Division rounds towards negative infinity.
func Evaluate(op string, a, b int) (int, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return FloorDiv(a, b), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
}

// FloorDiv divides a by b, rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Holds compares two integers with a relational operator
// (=, !=, <, >, <= or >=).
func Holds(op string, a, b int) (bool, error) {
	switch op {
	case "=":
		return a == b, nil
	case "!=":
		return a != b, nil
	case "<":
		return a < b, nil
	case ">":
		return a > b, nil
	case "<=":
		return a <= b, nil
	case ">=":
		return a >= b, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
}
