package automaton

import "fmt"

// Builder constructs automata state by state. States are numbered in order
// of creation, starting at 0.
//
//     b := automaton.NewBuilder([]string{"x"}, []int{2}, false)
//     even, odd := b.AddState(true), b.AddState(false)
//     b.Transition(even, []int{0}, even)
//     …
//     m, err := b.Build(even)
//
type Builder struct {
	al    alphabet
	lsd   bool
	final []bool
	delta [][]int
	err   error
}

// NewBuilder starts an automaton with the given tracks. lsd selects the
// reading direction of the automaton.
func NewBuilder(labels []string, bases []int, lsd bool) *Builder {
	b := &Builder{lsd: lsd}
	if len(labels) != len(bases) {
		b.err = fmt.Errorf("automaton: %d labels but %d bases", len(labels), len(bases))
		return b
	}
	seen := make(map[string]bool)
	for i, l := range labels {
		if seen[l] {
			b.err = fmt.Errorf("%w: %s", ErrDuplicateLabel, l)
			return b
		}
		seen[l] = true
		if bases[i] < 2 {
			b.err = fmt.Errorf("automaton: base of track %s must be at least 2", l)
			return b
		}
	}
	b.al = alphabet{labels: labels, bases: bases}.copy()
	return b
}

// Letters is the number of distinct symbols.
func (b *Builder) Letters() int {
	return b.al.size()
}

// Digits decodes a symbol into its digits, one per track.
func (b *Builder) Digits(letter int) []int {
	return b.al.decode(letter, make([]int, 0, len(b.al.bases)))
}

// AddState creates a new state and returns its number.
func (b *Builder) AddState(final bool) int {
	row := make([]int, b.al.size())
	for i := range row {
		row[i] = -1
	}
	b.final = append(b.final, final)
	b.delta = append(b.delta, row)
	return len(b.final) - 1
}

// Letter sets the transition from one state to another on a symbol.
func (b *Builder) Letter(from, letter, to int) *Builder {
	if b.err != nil {
		return b
	}
	if from < 0 || from >= len(b.final) || to < 0 || to >= len(b.final) ||
		letter < 0 || letter >= b.al.size() {
		b.err = fmt.Errorf("%w: %d -(%d)-> %d", ErrInvalidTransition, from, letter, to)
		return b
	}
	b.delta[from][letter] = to
	return b
}

// Transition sets the transition from one state to another on the symbol
// with the given digits.
func (b *Builder) Transition(from int, digits []int, to int) *Builder {
	if b.err != nil {
		return b
	}
	if len(digits) != len(b.al.bases) {
		b.err = fmt.Errorf("%w: symbol %v has wrong number of digits", ErrInvalidTransition, digits)
		return b
	}
	for i, d := range digits {
		if d < 0 || d >= b.al.bases[i] {
			b.err = fmt.Errorf("%w: digit %d out of range", ErrInvalidTransition, d)
			return b
		}
	}
	return b.Letter(from, b.al.encode(digits), to)
}

// Build finishes construction and returns the minimal automaton.
func (b *Builder) Build(initial int) (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	if initial < 0 || initial >= len(b.final) {
		return nil, fmt.Errorf("automaton: initial state %d does not exist", initial)
	}
	m := &Automaton{
		alphabet: b.al,
		lsd:      b.lsd,
		initial:  initial,
		final:    b.final,
		delta:    b.delta,
	}
	return m.Minimize(), nil
}

// BuildWord finishes construction of an automaton with output. output[q] is
// the output of state q. Every state must have a transition on every symbol.
// Accepting flags of states are ignored.
func (b *Builder) BuildWord(initial int, output []int) (*Word, error) {
	if b.err != nil {
		return nil, b.err
	}
	if initial < 0 || initial >= len(b.final) {
		return nil, fmt.Errorf("automaton: initial state %d does not exist", initial)
	}
	if len(output) != len(b.final) {
		return nil, fmt.Errorf("automaton: %d outputs for %d states", len(output), len(b.final))
	}
	for q, row := range b.delta {
		for l, r := range row {
			if r < 0 {
				return nil, fmt.Errorf("%w: state %d, letter %d", ErrIncomplete, q, l)
			}
		}
	}
	w := &Word{
		alphabet: b.al,
		lsd:      b.lsd,
		initial:  initial,
		delta:    b.delta,
		output:   append([]int(nil), output...),
	}
	return w.minimize(), nil
}
