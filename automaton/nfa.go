package automaton

import (
	"sort"

	"github.com/edwingeng/deque"
	"github.com/segmentio/fasthash/fnv1a"
)

// nfa is a non-deterministic automaton with a set of initial states. It is
// an intermediate result of reversal and projection.
type nfa struct {
	alphabet
	lsd     bool
	initial []int
	final   []bool
	delta   [][][]int // delta[state][letter] lists successor states
}

func newNFA(al alphabet, lsd bool, states int) *nfa {
	n := &nfa{
		alphabet: al,
		lsd:      lsd,
		final:    make([]bool, states),
		delta:    make([][][]int, states),
	}
	size := al.size()
	for q := range n.delta {
		n.delta[q] = make([][]int, size)
	}
	return n
}

// subsets interns sets of nfa states as states of a DFA.
type subsets struct {
	index map[uint64][]int
	sets  [][]int
}

func hashSet(set []int) uint64 {
	h := fnv1a.Init64
	for _, q := range set {
		h = fnv1a.AddUint64(h, uint64(q))
	}
	return h
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// lookup returns the id of a sorted set, creating it if necessary.
func (s *subsets) lookup(set []int) (int, bool) {
	h := hashSet(set)
	for _, id := range s.index[h] {
		if sameSet(s.sets[id], set) {
			return id, false
		}
	}
	id := len(s.sets)
	s.sets = append(s.sets, set)
	s.index[h] = append(s.index[h], id)
	return id, true
}

// Determinize converts the nfa into a DFA by subset construction. Only
// subsets reachable from the initial set are created.
func (n *nfa) determinize() *Automaton {
	size := n.size()
	m := &Automaton{alphabet: n.alphabet, lsd: n.lsd}
	ss := &subsets{index: make(map[uint64][]int)}
	add := func(set []int) (int, bool) {
		id, created := ss.lookup(set)
		if created {
			fin := false
			for _, q := range set {
				if n.final[q] {
					fin = true
					break
				}
			}
			m.final = append(m.final, fin)
			m.delta = append(m.delta, make([]int, size))
		}
		return id, created
	}
	start := normalize(n.initial, make([]bool, len(n.final)))
	m.initial, _ = add(start)
	work := deque.NewDeque()
	work.PushBack(m.initial)
	mark := make([]bool, len(n.final))
	for !work.Empty() {
		id := work.PopFront().(int)
		for letter := 0; letter < size; letter++ {
			var next []int
			for _, q := range ss.sets[id] {
				for _, r := range n.delta[q][letter] {
					if !mark[r] {
						mark[r] = true
						next = append(next, r)
					}
				}
			}
			for _, r := range next {
				mark[r] = false
			}
			if len(next) == 0 {
				m.delta[id][letter] = -1
				continue
			}
			sort.Ints(next)
			target, created := add(next)
			m.delta[id][letter] = target
			if created {
				work.PushBack(target)
			}
		}
	}
	T().Debugf("subset construction: %d nfa states, %d dfa states", len(n.final), len(m.final))
	return m
}

// normalize sorts a set of states and removes duplicates. mark must be all
// false and is left so.
func normalize(set []int, mark []bool) []int {
	var out []int
	for _, q := range set {
		if !mark[q] {
			mark[q] = true
			out = append(out, q)
		}
	}
	for _, q := range out {
		mark[q] = false
	}
	sort.Ints(out)
	return out
}
