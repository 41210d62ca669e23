package automaton

import (
	"github.com/edwingeng/deque"
)

// And accepts tuples accepted by both m and o. Tracks are aligned by label.
func (m *Automaton) And(o *Automaton) (*Automaton, error) {
	return m.product(o, func(a, b bool) bool { return a && b })
}

// Or accepts tuples accepted by m or o.
func (m *Automaton) Or(o *Automaton) (*Automaton, error) {
	return m.product(o, func(a, b bool) bool { return a || b })
}

// Xor accepts tuples accepted by exactly one of m and o.
func (m *Automaton) Xor(o *Automaton) (*Automaton, error) {
	return m.product(o, func(a, b bool) bool { return a != b })
}

// Imply accepts tuples accepted by o or rejected by m.
func (m *Automaton) Imply(o *Automaton) (*Automaton, error) {
	return m.product(o, func(a, b bool) bool { return !a || b })
}

// Iff accepts tuples accepted by both or by none of m and o.
func (m *Automaton) Iff(o *Automaton) (*Automaton, error) {
	return m.product(o, func(a, b bool) bool { return a == b })
}

// product runs m and o in parallel over the union of their tracks.
func (m *Automaton) product(o *Automaton, keep func(bool, bool) bool) (*Automaton, error) {
	lsd, err := orientation(m.alphabet, m.lsd, o.alphabet, o.lsd)
	if err != nil {
		return nil, err
	}
	al, pa, pb, err := merge(m.alphabet, o.alphabet)
	if err != nil {
		return nil, err
	}
	size := al.size()
	p := &Automaton{alphabet: al, lsd: lsd}
	ids := make(map[[2]int]int)
	var pairs [][2]int
	add := func(pair [2]int) (int, bool) {
		if id, ok := ids[pair]; ok {
			return id, false
		}
		id := len(pairs)
		ids[pair] = id
		pairs = append(pairs, pair)
		p.final = append(p.final, keep(m.accepting(pair[0]), o.accepting(pair[1])))
		p.delta = append(p.delta, make([]int, size))
		return id, true
	}
	rejectBoth := !keep(false, false)
	p.initial, _ = add([2]int{m.initial, o.initial})
	work := deque.NewDeque()
	work.PushBack(p.initial)
	for !work.Empty() {
		id := work.PopFront().(int)
		pair := pairs[id]
		for letter := 0; letter < size; letter++ {
			next := [2]int{m.step(pair[0], pa[letter]), o.step(pair[1], pb[letter])}
			if next[0] < 0 && next[1] < 0 && rejectBoth {
				p.delta[id][letter] = -1
				continue
			}
			target, created := add(next)
			p.delta[id][letter] = target
			if created {
				work.PushBack(target)
			}
		}
	}
	return p.Minimize(), nil
}

// orientation decides the reading direction of a combination of automata.
// Automata without tracks fit either direction.
func orientation(a alphabet, alsd bool, b alphabet, blsd bool) (bool, error) {
	switch {
	case len(a.labels) == 0:
		return blsd, nil
	case len(b.labels) == 0:
		return alsd, nil
	case alsd != blsd:
		return false, ErrOrientation
	}
	return alsd, nil
}

// Not accepts exactly the tuples rejected by m.
func (m *Automaton) Not() *Automaton {
	c := m.complete()
	for q := range c.final {
		c.final[q] = !c.final[q]
	}
	return c.Minimize()
}

// Reverse accepts the reversals of the words accepted by m. The result reads
// words in the opposite direction of m.
func (m *Automaton) Reverse() *Automaton {
	n := newNFA(m.alphabet, !m.lsd, len(m.final))
	n.final[m.initial] = true
	for q, row := range m.delta {
		for l, r := range row {
			if r >= 0 {
				n.delta[r][l] = append(n.delta[r][l], q)
			}
		}
	}
	for q, f := range m.final {
		if f {
			n.initial = append(n.initial, q)
		}
	}
	if len(n.initial) == 0 {
		return empty(m.alphabet, !m.lsd)
	}
	return n.determinize().Minimize()
}

// Quantify projects away the tracks with the given labels (existential
// quantification). Labels without a track are ignored. Accepting words are
// repaired such that padding with zeros stays irrelevant: for msd automata
// a word is accepted if some zero-prefixed version of it is, for lsd
// automata if some zero-suffixed version is. Quantifying all tracks yields
// True() or False().
func (m *Automaton) Quantify(names ...string) *Automaton {
	drop := make(map[string]bool)
	for _, name := range names {
		if m.index(name) >= 0 {
			drop[name] = true
		}
	}
	if len(drop) == 0 {
		return m
	}
	var sub alphabet
	for i, l := range m.labels {
		if !drop[l] {
			sub.labels = append(sub.labels, l)
			sub.bases = append(sub.bases, m.bases[i])
		}
	}
	if len(sub.labels) == 0 {
		return Constant(!m.IsEmpty())
	}
	T().Debugf("quantify %v from %v", names, m.labels)
	proj := m.projection(sub)
	n := newNFA(sub, m.lsd, len(m.final))
	copy(n.final, m.final)
	for q, row := range m.delta {
		for l, r := range row {
			if r >= 0 {
				n.delta[q][proj[l]] = append(n.delta[q][proj[l]], r)
			}
		}
	}
	if m.lsd {
		n.final = n.zeroBackward(n.final)
		n.initial = []int{m.initial}
	} else {
		n.initial = n.zeroForward(m.initial)
	}
	return n.determinize().Minimize()
}

// zeroForward collects the states reachable from q by reading all-zero
// symbols.
func (n *nfa) zeroForward(q int) []int {
	seen := make([]bool, len(n.final))
	seen[q] = true
	states := []int{q}
	for i := 0; i < len(states); i++ {
		for _, r := range n.delta[states[i]][0] {
			if !seen[r] {
				seen[r] = true
				states = append(states, r)
			}
		}
	}
	return states
}

// zeroBackward extends a set of accepting states by all states from which
// one of them is reachable by reading all-zero symbols.
func (n *nfa) zeroBackward(final []bool) []bool {
	ext := append([]bool(nil), final...)
	for changed := true; changed; {
		changed = false
		for q := range n.delta {
			if ext[q] {
				continue
			}
			for _, r := range n.delta[q][0] {
				if ext[r] {
					ext[q] = true
					changed = true
					break
				}
			}
		}
	}
	return ext
}
