package automaton

import (
	"fmt"
	"strings"
)

// Automaton is a deterministic finite automaton over multi-track symbols.
// Transitions are partial: a missing transition (-1) rejects the input.
type Automaton struct {
	alphabet
	lsd     bool    // words are read least significant digit first
	initial int     // start state
	final   []bool  // accepting states
	delta   [][]int // delta[state][letter] is the successor state or -1
}

// True returns the automaton without tracks accepting every word.
func True() *Automaton {
	return &Automaton{final: []bool{true}, delta: [][]int{{0}}}
}

// False returns the automaton without tracks accepting nothing.
func False() *Automaton {
	return &Automaton{final: []bool{false}, delta: [][]int{{-1}}}
}

// Constant returns True() for b == true, False() otherwise.
func Constant(b bool) *Automaton {
	if b {
		return True()
	}
	return False()
}

// empty creates an automaton with the given tracks which accepts nothing.
func empty(al alphabet, lsd bool) *Automaton {
	row := make([]int, al.size())
	for i := range row {
		row[i] = -1
	}
	return &Automaton{alphabet: al, lsd: lsd, final: []bool{false}, delta: [][]int{row}}
}

// Labels returns the track labels in track order.
func (m *Automaton) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Bases returns the digit base of each track, in track order.
func (m *Automaton) Bases() []int {
	return append([]int(nil), m.bases...)
}

// HasLabel is true if the automaton has a track with the given label.
func (m *Automaton) HasLabel(label string) bool {
	return m.index(label) >= 0
}

// LSD is true if words are read least significant digit first.
func (m *Automaton) LSD() bool {
	return m.lsd
}

// States returns the number of states.
func (m *Automaton) States() int {
	return len(m.final)
}

// Truth reports the truth value of an automaton without tracks. ok is false
// if the automaton has free tracks.
func (m *Automaton) Truth() (value bool, ok bool) {
	if len(m.labels) > 0 {
		return false, false
	}
	return !m.IsEmpty(), true
}

// step is delta with the rejecting state -1 as a sink.
func (m *Automaton) step(q, letter int) int {
	if q < 0 {
		return -1
	}
	return m.delta[q][letter]
}

func (m *Automaton) accepting(q int) bool {
	return q >= 0 && m.final[q]
}

// Accepts runs the automaton on a word. word[i] holds the digits of the
// i-th symbol, one digit per track in track order.
func (m *Automaton) Accepts(word [][]int) bool {
	q := m.initial
	for _, digits := range word {
		if len(digits) != len(m.bases) {
			return false
		}
		for i, d := range digits {
			if d < 0 || d >= m.bases[i] {
				return false
			}
		}
		if q = m.delta[q][m.encode(digits)]; q < 0 {
			return false
		}
	}
	return m.final[q]
}

// IsEmpty is true if the automaton accepts no word.
func (m *Automaton) IsEmpty() bool {
	seen := m.reachable()
	for q, ok := range seen {
		if ok && m.final[q] {
			return false
		}
	}
	return true
}

// Equivalent is true if m and o accept the same tuples.
func (m *Automaton) Equivalent(o *Automaton) (bool, error) {
	x, err := m.Xor(o)
	if err != nil {
		return false, err
	}
	return x.IsEmpty(), nil
}

// Rename changes track labels. Labels missing in mapping are kept. Renaming
// is simultaneous, so labels may be swapped. It is an error if two tracks
// end up with the same label.
func (m *Automaton) Rename(mapping map[string]string) (*Automaton, error) {
	labels, err := rename(m.labels, mapping)
	if err != nil {
		return nil, err
	}
	r := *m
	r.alphabet = alphabet{labels: labels, bases: m.bases}
	return &r, nil
}

// Reorder returns an automaton with its tracks arranged in the order of
// labels, which must be a permutation of m's labels.
func (m *Automaton) Reorder(labels []string) (*Automaton, error) {
	if len(labels) != len(m.labels) {
		return nil, fmt.Errorf("%w: %v for %v", ErrLabelSet, labels, m.labels)
	}
	al := alphabet{labels: append([]string(nil), labels...), bases: make([]int, len(labels))}
	for i, l := range labels {
		j := m.index(l)
		if j < 0 || al.index(l) != i {
			return nil, fmt.Errorf("%w: %v for %v", ErrLabelSet, labels, m.labels)
		}
		al.bases[i] = m.bases[j]
	}
	proj := al.projection(m.alphabet)
	r := &Automaton{
		alphabet: al,
		lsd:      m.lsd,
		initial:  m.initial,
		final:    append([]bool(nil), m.final...),
		delta:    make([][]int, len(m.delta)),
	}
	for q, row := range m.delta {
		r.delta[q] = make([]int, len(proj))
		for letter, old := range proj {
			r.delta[q][letter] = row[old]
		}
	}
	return r, nil
}

func rename(labels []string, mapping map[string]string) ([]string, error) {
	renamed := make([]string, len(labels))
	seen := make(map[string]bool, len(labels))
	for i, l := range labels {
		if target, ok := mapping[l]; ok {
			l = target
		}
		if seen[l] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, l)
		}
		seen[l] = true
		renamed[i] = l
	}
	return renamed, nil
}

func (m *Automaton) String() string {
	var b strings.Builder
	b.WriteString("automaton[")
	if m.lsd {
		b.WriteString("lsd")
	} else {
		b.WriteString("msd")
	}
	fmt.Fprintf(&b, " %v states=%d]", m.labels, len(m.final))
	return b.String()
}

// clone copies the transition structure, leaving the alphabet shared.
func (m *Automaton) clone() *Automaton {
	c := &Automaton{
		alphabet: m.alphabet,
		lsd:      m.lsd,
		initial:  m.initial,
		final:    append([]bool(nil), m.final...),
		delta:    make([][]int, len(m.delta)),
	}
	for q, row := range m.delta {
		c.delta[q] = append([]int(nil), row...)
	}
	return c
}

// complete returns a copy of m where missing transitions lead to a
// non-accepting sink state.
func (m *Automaton) complete() *Automaton {
	c := m.clone()
	sink := -1
	for q, row := range c.delta {
		for l, r := range row {
			if r >= 0 {
				continue
			}
			if sink < 0 {
				sink = len(c.final)
				c.final = append(c.final, false)
				srow := make([]int, c.size())
				for i := range srow {
					srow[i] = sink
				}
				c.delta = append(c.delta, srow)
			}
			c.delta[q][l] = sink
		}
	}
	return c
}
