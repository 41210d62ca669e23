package compile

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/numsys"
	"github.com/npillmayer/autoseq/token"
)

func (ev *evaluator) arithmetic(t token.Token) error {
	if t.Op() == "_" {
		return ev.negate(t)
	}
	args := ev.pop(2)
	a, b := args[0], args[1]
	ca, aConst := expr.Constant(a)
	cb, bConst := expr.Constant(b)
	switch {
	case aConst && bConst:
		v, err := fold(t, ca, cb)
		if err != nil {
			return err
		}
		ev.push(&expr.NumberLiteral{Value: v, System: literalSystem(a, b)})
		return nil
	case t.Op() == "*" && ((aConst && ca == 0 && unbound(b)) || (bConst && cb == 0 && unbound(a))):
		ev.push(&expr.NumberLiteral{Value: 0, System: literalSystem(a, b)})
		return nil
	}
	wa, aWord := a.(*expr.Word)
	wb, bWord := b.(*expr.Word)
	switch {
	case aWord && bWord:
		w, err := wa.W.Combine(wb.W, t.Op())
		if err != nil {
			return automatonError(t, err)
		}
		side, err := wa.Side.And(wb.Side)
		if err != nil {
			return automatonError(t, err)
		}
		ev.push(&expr.Word{
			W:        w,
			Side:     side,
			Quantify: append(append([]string(nil), wa.Quantify...), wb.Quantify...),
			Text:     fmt.Sprintf("(%s%s%s)", a, t.Op(), b),
		})
		return nil
	case aWord && bConst:
		return ev.mapWord(t, t.Op(), wa, cb, false, fmt.Sprintf("(%s%s%s)", a, t.Op(), b))
	case bWord && aConst:
		return ev.mapWord(t, t.Op(), wb, ca, true, fmt.Sprintf("(%s%s%s)", a, t.Op(), b))
	case aWord:
		return ev.splitArithmetic(t, wa, b, false)
	case bWord:
		return ev.splitArithmetic(t, wb, a, true)
	}
	lhs, err := ev.operand(t, a)
	if err != nil {
		return err
	}
	rhs, err := ev.operand(t, b)
	if err != nil {
		return err
	}
	ns, err := ev.system(t, a, b)
	if err != nil {
		return err
	}
	c := ev.ctx.Fresh()
	m, err := ns.Arithmetic(lhs, rhs, c, t.Op())
	if err != nil {
		return automatonError(t, err)
	}
	if m, err = ev.absorb(t, m, a, b); err != nil {
		return err
	}
	ev.push(&expr.Arithmetic{ID: c, Side: m, Text: fmt.Sprintf("(%s%s%s)", a, t.Op(), b)})
	return nil
}

// unbound is true for words without side-conditions on fresh indices.
// Other operands of a product with 0 keep their side-conditions.
func unbound(e expr.Expression) bool {
	w, ok := e.(*expr.Word)
	return ok && len(w.Quantify) == 0
}

// mapWord applies an arithmetic operator with a constant to every output
// of a word.
func (ev *evaluator) mapWord(t token.Token, op string, w *expr.Word, n int, reverse bool, text string) error {
	mapped, err := w.W.ApplyArith(op, n, reverse)
	if err != nil {
		return automatonError(t, err)
	}
	ev.push(&expr.Word{W: mapped, Side: w.Side, Quantify: w.Quantify, Text: text})
	return nil
}

// splitArithmetic combines a word with a variable or arithmetic term by a
// case split over the outputs o of the word:
//
//     ∧ₒ (W = o ⇒ o op x = c)
//
// with a fresh identifier c for the result. If reverse is set, the word is
// the right operand.
func (ev *evaluator) splitArithmetic(t token.Token, w *expr.Word, other expr.Expression, reverse bool) error {
	x, err := ev.operand(t, other)
	if err != nil {
		return err
	}
	ns, err := ev.system(t, other)
	if err != nil {
		return err
	}
	c := ev.ctx.Fresh()
	m := automaton.True()
	for _, o := range w.W.Outputs() {
		lhs, rhs := numsys.Const(o), x
		if reverse {
			lhs, rhs = rhs, lhs
		}
		branch, err := ns.Arithmetic(lhs, rhs, c, t.Op())
		if errors.Is(err, numsys.ErrDivisionByZero) {
			branch = automaton.False() // no result where the divisor is 0
		} else if err != nil {
			return automatonError(t, err)
		}
		clause, err := w.W.OutputEquals(o).Imply(branch)
		if err != nil {
			return automatonError(t, err)
		}
		if m, err = m.And(clause); err != nil {
			return automatonError(t, err)
		}
	}
	if m, err = ev.absorb(t, m, w, other); err != nil {
		return err
	}
	text := fmt.Sprintf("(%s%s%s)", w, t.Op(), other)
	if reverse {
		text = fmt.Sprintf("(%s%s%s)", other, t.Op(), w)
	}
	ev.push(&expr.Arithmetic{ID: c, Side: m, Text: text})
	return nil
}

// negate implements unary minus. For variables and terms x it creates a
// fresh c with x + c = 0.
func (ev *evaluator) negate(t token.Token) error {
	arg := ev.pop(1)[0]
	switch x := arg.(type) {
	case *expr.NumberLiteral:
		if x.Value == math.MinInt {
			return newError(ArithmeticError, t.String(), t.Pos(), "integer overflow negating %d", x.Value)
		}
		ev.push(&expr.NumberLiteral{Value: -x.Value, System: x.System})
		return nil
	case *expr.AlphabetLetter:
		ev.push(&expr.AlphabetLetter{Value: -x.Value})
		return nil
	case *expr.Word:
		return ev.mapWord(t, "-", x, 0, true, "_"+x.Text)
	case *expr.Variable, *expr.Arithmetic:
		operand, err := ev.operand(t, x)
		if err != nil {
			return err
		}
		ns, err := ev.system(t)
		if err != nil {
			return err
		}
		c := ev.ctx.Fresh()
		m, err := ns.Arithmetic(numsys.Const(0), operand, c, "-")
		if err != nil {
			return automatonError(t, err)
		}
		if m, err = ev.absorb(t, m, x); err != nil {
			return err
		}
		ev.push(&expr.Arithmetic{ID: c, Side: m, Text: "_" + x.String()})
		return nil
	}
	return typeError(t, arg)
}

// fold computes the value of an arithmetic operator on two constants.
func fold(t token.Token, a, b int) (int, error) {
	overflow := false
	switch t.Op() {
	case "+":
		overflow = (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b)
	case "-":
		overflow = (b < 0 && a > math.MaxInt+b) || (b > 0 && a < math.MinInt+b)
	case "*":
		if a != 0 && b != 0 {
			p := a * b
			overflow = p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt)
		}
	case "/":
		overflow = a == math.MinInt && b == -1
	}
	if overflow {
		return 0, newError(ArithmeticError, t.String(), t.Pos(), "integer overflow in %d %s %d", a, t.Op(), b)
	}
	v, err := automaton.Evaluate(t.Op(), a, b)
	if errors.Is(err, automaton.ErrDivisionByZero) {
		return 0, wrapError(ArithmeticError, t.String(), t.Pos(), err)
	} else if err != nil {
		return 0, wrapError(InternalError, t.String(), t.Pos(), err)
	}
	return v, nil
}

func literalSystem(args ...expr.Expression) string {
	for _, a := range args {
		if n, ok := a.(*expr.NumberLiteral); ok && n.System != "" {
			return n.System
		}
	}
	return ""
}
