package numsys

import (
	"fmt"

	"github.com/npillmayer/autoseq/automaton"
)

// slack is the track label of the auxiliary variable in inequalities.
// It cannot clash with user variables, which never start with '%'.
const slack = "%slack"

// Arithmetic returns the automaton accepting (lhs op rhs = result) for
// op in {+, -, *, /}. Multiplication needs at least one constant factor;
// division needs a positive constant divisor and rounds down.
func (b *Base) Arithmetic(lhs, rhs Operand, result string, op string) (*automaton.Automaton, error) {
	T().Debugf("%s: %s %s %s = %s", b.Name(), lhs, op, rhs, result)
	var eq equation
	switch op {
	case "+":
		eq.add(lhs, 1)
		eq.add(rhs, 1)
	case "-":
		eq.add(lhs, 1)
		eq.add(rhs, -1)
	case "*":
		switch {
		case lhs.IsConst && rhs.IsConst:
			eq.k = -lhs.Value * rhs.Value
		case lhs.IsConst:
			eq.add(rhs, lhs.Value)
		case rhs.IsConst:
			eq.add(lhs, rhs.Value)
		default:
			return nil, fmt.Errorf("%w: %s * %s", ErrNonlinear, lhs, rhs)
		}
	case "/":
		return b.divide(lhs, rhs, result)
	default:
		return nil, fmt.Errorf("%w: arithmetic operator %q", ErrUnsupported, op)
	}
	eq.add(Var(result), -1)
	return b.solve(eq)
}

// divide returns the automaton for result = ⌊lhs / rhs⌋, i.e. the
// disjunction of lhs − rhs·result = r for 0 ≤ r < rhs.
func (b *Base) divide(lhs, rhs Operand, result string) (*automaton.Automaton, error) {
	switch {
	case !rhs.IsConst:
		return nil, fmt.Errorf("%w: division by variable %s", ErrUnsupported, rhs)
	case rhs.Value == 0:
		return nil, ErrDivisionByZero
	case rhs.Value < 0:
		return nil, fmt.Errorf("%w: division by negative constant %d", ErrUnsupported, rhs.Value)
	case lhs.IsConst:
		return b.Constant(automaton.FloorDiv(lhs.Value, rhs.Value), result)
	}
	m := automaton.False()
	for r := 0; r < rhs.Value; r++ {
		var eq equation
		eq.add(lhs, 1)
		eq.add(Var(result), -rhs.Value)
		eq.k += r
		rem, err := b.solve(eq)
		if err != nil {
			return nil, err
		}
		if m, err = m.Or(rem); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Comparison returns the automaton accepting (lhs op rhs) for op in
// {=, !=, <, >, <=, >=}.
func (b *Base) Comparison(lhs, rhs Operand, op string) (*automaton.Automaton, error) {
	T().Debugf("%s: %s %s %s", b.Name(), lhs, op, rhs)
	switch op {
	case ">":
		lhs, rhs, op = rhs, lhs, "<"
	case ">=":
		lhs, rhs, op = rhs, lhs, "<="
	}
	var eq equation
	eq.add(lhs, 1)
	eq.add(rhs, -1)
	switch op {
	case "=":
		return b.solve(eq)
	case "!=":
		m, err := b.solve(eq)
		if err != nil {
			return nil, err
		}
		return m.Not(), nil
	case "<":
		// lhs − rhs < 0  ⇔  ∃t: lhs − rhs + t + 1 = 0
		eq.k--
	case "<=":
		// lhs − rhs ≤ 0  ⇔  ∃t: lhs − rhs + t = 0
	default:
		return nil, fmt.Errorf("%w: relational operator %q", ErrUnsupported, op)
	}
	eq.add(Var(slack), 1)
	m, err := b.solve(eq)
	if err != nil {
		return nil, err
	}
	return m.Quantify(slack), nil
}

// Constant returns the automaton accepting exactly n on track label.
func (b *Base) Constant(n int, label string) (*automaton.Automaton, error) {
	var eq equation
	eq.add(Var(label), 1)
	eq.k = n
	return b.solve(eq)
}
