package numsys

import (
	"github.com/edwingeng/deque"
	"github.com/npillmayer/autoseq/automaton"
)

// term is a coefficient times a variable.
type term struct {
	label string
	coef  int
}

// equation is the linear equation Σ coef·label = k.
type equation struct {
	terms []term
	k     int
}

// add adds c·o to the left hand side of the equation. Constants are moved
// to the right hand side.
func (eq *equation) add(o Operand, c int) {
	if o.IsConst {
		eq.k -= c * o.Value
		return
	}
	for i := range eq.terms {
		if eq.terms[i].label == o.Name {
			eq.terms[i].coef += c
			return
		}
	}
	eq.terms = append(eq.terms, term{label: o.Name, coef: c})
}

func (eq *equation) labels() []string {
	labels := make([]string, len(eq.terms))
	for i, t := range eq.terms {
		labels[i] = t.label
	}
	return labels
}

// solve builds the automaton accepting the natural number solutions of eq.
// Variables with coefficient 0 stay as unconstrained tracks.
//
// Digits are consumed least significant first while tracking a carry. With
// carry c after n digits, Σ coef·(x mod kⁿ) − K = c·kⁿ. Reading digits dᵢ
// gives s = c + Σ coefᵢ·dᵢ, which must be divisible by k; the new carry is
// s/k. A word is accepted when the carry is 0. The carry stays within
// max(|K|, Σ|coefᵢ|), so there are finitely many states.
func (b *Base) solve(eq equation) (*automaton.Automaton, error) {
	if len(eq.terms) == 0 {
		return automaton.Constant(eq.k == 0), nil
	}
	labels := eq.labels()
	bases := make([]int, len(labels))
	for i := range bases {
		bases[i] = b.k
	}
	bld := automaton.NewBuilder(labels, bases, true)
	states := make(map[int]int)
	work := deque.NewDeque()
	state := func(carry int) int {
		if q, ok := states[carry]; ok {
			return q
		}
		q := bld.AddState(carry == 0)
		states[carry] = q
		work.PushBack(carry)
		return q
	}
	start := state(-eq.k)
	letters := bld.Letters()
	for !work.Empty() {
		carry := work.PopFront().(int)
		from := states[carry]
		for l := 0; l < letters; l++ {
			s := carry
			for i, d := range bld.Digits(l) {
				s += eq.terms[i].coef * d
			}
			if s%b.k != 0 {
				continue
			}
			bld.Letter(from, l, state(s/b.k))
		}
	}
	m, err := bld.Build(start)
	if err != nil {
		return nil, err
	}
	T().Debugf("%v = %d: %d carry states, %d after minimization", eq.terms, eq.k, len(states), m.States())
	if !b.lsd {
		m = m.Reverse()
	}
	return m, nil
}
