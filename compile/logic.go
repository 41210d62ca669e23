package compile

import (
	"fmt"
	"strings"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/token"
)

type binaryOp func(a, b *automaton.Automaton) (*automaton.Automaton, error)

var connectives = map[string]binaryOp{
	"&":   (*automaton.Automaton).And,
	"|":   (*automaton.Automaton).Or,
	"^":   (*automaton.Automaton).Xor,
	"=>":  (*automaton.Automaton).Imply,
	"<=>": (*automaton.Automaton).Iff,
}

func (ev *evaluator) logical(t token.Token) error {
	switch op := t.Op(); op {
	case "~", "`":
		return ev.unary(t)
	case "E", "A", "I":
		return ev.quantify(t)
	default:
		connective, ok := connectives[op]
		if !ok {
			return newError(InternalError, t.String(), t.Pos(), "unknown logical operator")
		}
		args := ev.pop(2)
		a, err := formula(t, args[0])
		if err != nil {
			return err
		}
		b, err := formula(t, args[1])
		if err != nil {
			return err
		}
		m, err := connective(a.M, b.M)
		if err != nil {
			return automatonError(t, err)
		}
		ev.push(&expr.Automaton{M: m, Text: fmt.Sprintf("(%s%s%s)", a, op, b)})
	}
	return nil
}

func (ev *evaluator) unary(t token.Token) error {
	a, err := formula(t, ev.pop(1)[0])
	if err != nil {
		return err
	}
	var m *automaton.Automaton
	if t.Op() == "~" {
		m = a.M.Not()
	} else {
		m = a.M.Reverse()
	}
	ev.push(&expr.Automaton{M: m, Text: t.Op() + a.Text})
	return nil
}

// quantify handles E (exists), A (for all, as ~E~) and I (infinitely many).
// The operands are the bound variables followed by the formula.
func (ev *evaluator) quantify(t token.Token) error {
	args := ev.pop(t.Arity())
	names := make([]string, 0, len(args)-1)
	for _, v := range args[:len(args)-1] {
		x, ok := v.(*expr.Variable)
		if !ok {
			return typeError(t, v)
		}
		names = append(names, x.Name)
	}
	body, err := formula(t, args[len(args)-1])
	if err != nil {
		return err
	}
	var m *automaton.Automaton
	switch t.Op() {
	case "E":
		m = body.M.Quantify(names...)
	case "A":
		m = body.M.Not().Quantify(names...).Not()
	case "I":
		if len(names) != 1 {
			return newError(ArityError, t.String(), t.Pos(), "quantifier I binds exactly one variable")
		}
		m = automaton.Constant(body.M.StripLeadingZeros(names...).Infinite())
	}
	T().Debugf("%s %v: %v", t.Op(), names, m)
	ev.push(&expr.Automaton{
		M:    m,
		Text: fmt.Sprintf("%s%s %s", t.Op(), strings.Join(names, ","), body),
	})
	return nil
}

// formula asserts that an operand of a logical operator is an automaton.
func formula(t token.Token, e expr.Expression) (*expr.Automaton, error) {
	if a, ok := e.(*expr.Automaton); ok {
		return a, nil
	}
	return nil, typeError(t, e)
}
