package automaton

import (
	"strconv"
	"strings"

	"github.com/edwingeng/deque"
)

// Minimize returns the minimal automaton accepting the same language.
// States which are unreachable or cannot reach an accepting state are removed.
func (m *Automaton) Minimize() *Automaton {
	t := m.trim()
	if t == nil {
		return empty(m.alphabet, m.lsd)
	}
	class := make([]int, len(t.final))
	for q, f := range t.final {
		if f {
			class[q] = 1
		}
	}
	class = refine(t.delta, class)
	return t.quotient(class)
}

// reachable marks all states reachable from the initial state.
func (m *Automaton) reachable() []bool {
	seen := make([]bool, len(m.final))
	seen[m.initial] = true
	queue := deque.NewDeque()
	queue.PushBack(m.initial)
	for !queue.Empty() {
		q := queue.PopFront().(int)
		for _, r := range m.delta[q] {
			if r >= 0 && !seen[r] {
				seen[r] = true
				queue.PushBack(r)
			}
		}
	}
	return seen
}

// productive marks all states from which an accepting state is reachable.
func (m *Automaton) productive() []bool {
	pred := make([][]int, len(m.final))
	for q, row := range m.delta {
		for _, r := range row {
			if r >= 0 {
				pred[r] = append(pred[r], q)
			}
		}
	}
	seen := make([]bool, len(m.final))
	queue := deque.NewDeque()
	for q, f := range m.final {
		if f {
			seen[q] = true
			queue.PushBack(q)
		}
	}
	for !queue.Empty() {
		r := queue.PopFront().(int)
		for _, q := range pred[r] {
			if !seen[q] {
				seen[q] = true
				queue.PushBack(q)
			}
		}
	}
	return seen
}

// trim removes useless states. It returns nil if the language is empty.
func (m *Automaton) trim() *Automaton {
	reach, prod := m.reachable(), m.productive()
	if !prod[m.initial] {
		return nil
	}
	renum := make([]int, len(m.final))
	n := 0
	for q := range m.final {
		if reach[q] && prod[q] {
			renum[q] = n
			n++
		} else {
			renum[q] = -1
		}
	}
	t := &Automaton{
		alphabet: m.alphabet,
		lsd:      m.lsd,
		initial:  renum[m.initial],
		final:    make([]bool, n),
		delta:    make([][]int, n),
	}
	for q, row := range m.delta {
		p := renum[q]
		if p < 0 {
			continue
		}
		t.final[p] = m.final[q]
		t.delta[p] = make([]int, len(row))
		for l, r := range row {
			if r >= 0 {
				r = renum[r]
			}
			t.delta[p][l] = r
		}
	}
	return t
}

// refine computes the coarsest partition of states compatible with the
// initial partition class and the transition function (Moore's algorithm).
// The rejecting state -1 forms a class of its own.
func refine(delta [][]int, class []int) []int {
	count := distinct(class)
	var sb strings.Builder
	for {
		sigs := make(map[string]int)
		next := make([]int, len(delta))
		for q, row := range delta {
			sb.Reset()
			sb.WriteString(strconv.Itoa(class[q]))
			for _, r := range row {
				sb.WriteByte(',')
				if r < 0 {
					sb.WriteByte('-')
				} else {
					sb.WriteString(strconv.Itoa(class[r]))
				}
			}
			key := sb.String()
			id, ok := sigs[key]
			if !ok {
				id = len(sigs)
				sigs[key] = id
			}
			next[q] = id
		}
		if len(sigs) == count {
			return next
		}
		count, class = len(sigs), next
	}
}

func distinct(class []int) int {
	seen := make(map[int]bool)
	for _, c := range class {
		seen[c] = true
	}
	return len(seen)
}

// quotient merges states of equal class. Classes are numbered 0…n-1.
func (m *Automaton) quotient(class []int) *Automaton {
	n := distinct(class)
	qm := &Automaton{
		alphabet: m.alphabet,
		lsd:      m.lsd,
		initial:  class[m.initial],
		final:    make([]bool, n),
		delta:    make([][]int, n),
	}
	for q, row := range m.delta {
		c := class[q]
		if qm.delta[c] != nil {
			continue
		}
		qm.final[c] = m.final[q]
		qm.delta[c] = make([]int, len(row))
		for l, r := range row {
			if r >= 0 {
				r = class[r]
			}
			qm.delta[c][l] = r
		}
	}
	return qm
}
