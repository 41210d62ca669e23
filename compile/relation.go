package compile

import (
	"fmt"

	"github.com/npillmayer/autoseq/automaton"
	"github.com/npillmayer/autoseq/expr"
	"github.com/npillmayer/autoseq/numsys"
	"github.com/npillmayer/autoseq/token"
)

// flipped maps a relation to the relation with swapped arguments.
var flipped = map[string]string{
	"=":  "=",
	"!=": "!=",
	"<":  ">",
	">":  "<",
	"<=": ">=",
	">=": "<=",
}

func (ev *evaluator) relation(t token.Token) error {
	op := t.Op()
	if _, ok := flipped[op]; !ok {
		return newError(InternalError, t.String(), t.Pos(), "unknown relation")
	}
	args := ev.pop(2)
	a, b := args[0], args[1]
	text := fmt.Sprintf("%s%s%s", a, op, b)
	ca, aConst := expr.Constant(a)
	cb, bConst := expr.Constant(b)
	wa, aWord := a.(*expr.Word)
	wb, bWord := b.(*expr.Word)
	var m *automaton.Automaton
	var err error
	switch {
	case aConst && bConst:
		var holds bool
		if holds, err = automaton.Holds(op, ca, cb); err == nil {
			m = automaton.Constant(holds)
		}
	case aWord && bWord:
		if m, err = wa.W.CompareWord(wb.W, op); err == nil {
			m, err = ev.absorb(t, m, wa, wb)
		}
	case aWord && bConst:
		if m, err = wa.W.Compare(op, cb); err == nil {
			m, err = ev.absorb(t, m, wa)
		}
	case bWord && aConst:
		if m, err = wb.W.Compare(flipped[op], ca); err == nil {
			m, err = ev.absorb(t, m, wb)
		}
	case aWord:
		m, err = ev.splitRelation(t, wa, b, op)
	case bWord:
		m, err = ev.splitRelation(t, wb, a, flipped[op])
	default:
		m, err = ev.compare(t, a, b, op)
	}
	if err != nil {
		return automatonError(t, err)
	}
	ev.push(&expr.Automaton{M: m, Text: text})
	return nil
}

// compare relates two variables, terms or constants by a number system.
func (ev *evaluator) compare(t token.Token, a, b expr.Expression, op string) (*automaton.Automaton, error) {
	lhs, err := ev.operand(t, a)
	if err != nil {
		return nil, err
	}
	rhs, err := ev.operand(t, b)
	if err != nil {
		return nil, err
	}
	ns, err := ev.system(t, a, b)
	if err != nil {
		return nil, err
	}
	m, err := ns.Comparison(lhs, rhs, op)
	if err != nil {
		return nil, err
	}
	return ev.absorb(t, m, a, b)
}

// splitRelation relates a word to a variable or term x by a case split over
// the outputs o of the word:
//
//     ∧ₒ (W = o ⇒ o op x)
//
func (ev *evaluator) splitRelation(t token.Token, w *expr.Word, other expr.Expression, op string) (*automaton.Automaton, error) {
	x, err := ev.operand(t, other)
	if err != nil {
		return nil, err
	}
	ns, err := ev.system(t, other)
	if err != nil {
		return nil, err
	}
	m := automaton.True()
	for _, o := range w.W.Outputs() {
		branch, err := ns.Comparison(numsys.Const(o), x, op)
		if err != nil {
			return nil, err
		}
		clause, err := w.W.OutputEquals(o).Imply(branch)
		if err != nil {
			return nil, err
		}
		if m, err = m.And(clause); err != nil {
			return nil, err
		}
	}
	return ev.absorb(t, m, w, other)
}
