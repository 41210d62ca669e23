package automaton

import (
	"fmt"

	"github.com/edwingeng/deque"
	"github.com/emirpasic/gods/sets/treeset"
)

// Word is a deterministic finite automaton with output. Its transition
// function is total; every state carries an integer output.
type Word struct {
	alphabet
	lsd     bool
	initial int
	delta   [][]int
	output  []int
}

// Labels returns the track labels in track order.
func (w *Word) Labels() []string {
	return append([]string(nil), w.labels...)
}

// Bases returns the digit base of each track.
func (w *Word) Bases() []int {
	return append([]int(nil), w.bases...)
}

// LSD is true if indices are read least significant digit first.
func (w *Word) LSD() bool {
	return w.lsd
}

// States returns the number of states.
func (w *Word) States() int {
	return len(w.output)
}

// Outputs returns the distinct outputs of the word in ascending order.
func (w *Word) Outputs() []int {
	set := treeset.NewWithIntComparator()
	for _, o := range w.output {
		set.Add(o)
	}
	outs := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		outs = append(outs, v.(int))
	}
	return outs
}

// Output runs the word on an index word and returns the output of the
// state reached. word[i] holds the digits of the i-th symbol.
func (w *Word) Output(word [][]int) (int, error) {
	q := w.initial
	for _, digits := range word {
		if len(digits) != len(w.bases) {
			return 0, fmt.Errorf("%w: symbol %v has wrong number of digits", ErrInvalidTransition, digits)
		}
		for i, d := range digits {
			if d < 0 || d >= w.bases[i] {
				return 0, fmt.Errorf("%w: digit %d out of range", ErrInvalidTransition, d)
			}
		}
		q = w.delta[q][w.encode(digits)]
	}
	return w.output[q], nil
}

// OutputEquals returns the automaton accepting the indices at which the word
// has output o.
func (w *Word) OutputEquals(o int) *Automaton {
	return w.accepting(func(out int) bool { return out == o })
}

func (w *Word) accepting(pred func(int) bool) *Automaton {
	m := &Automaton{
		alphabet: w.alphabet,
		lsd:      w.lsd,
		initial:  w.initial,
		final:    make([]bool, len(w.output)),
		delta:    w.delta,
	}
	for q, out := range w.output {
		m.final[q] = pred(out)
	}
	return m.Minimize()
}

// Rename changes index track labels, see Automaton.Rename.
func (w *Word) Rename(mapping map[string]string) (*Word, error) {
	labels, err := rename(w.labels, mapping)
	if err != nil {
		return nil, err
	}
	r := *w
	r.alphabet = alphabet{labels: labels, bases: w.bases}
	return &r, nil
}

// ApplyArith maps every output o to (o op n), or to (n op o) if reverse is set.
func (w *Word) ApplyArith(op string, n int, reverse bool) (*Word, error) {
	out := make([]int, len(w.output))
	for q, o := range w.output {
		a, b := o, n
		if reverse {
			a, b = n, o
		}
		v, err := Evaluate(op, a, b)
		if err != nil {
			return nil, err
		}
		out[q] = v
	}
	r := *w
	r.output = out
	return r.minimize(), nil
}

// Compare returns the automaton accepting the indices where (output op n) holds.
func (w *Word) Compare(op string, n int) (*Automaton, error) {
	if _, err := Holds(op, 0, 0); err != nil {
		return nil, err
	}
	return w.accepting(func(out int) bool {
		ok, _ := Holds(op, out, n)
		return ok
	}), nil
}

// Combine builds the word with output (w op v) at every index. Index tracks
// are aligned by label.
func (w *Word) Combine(v *Word, op string) (*Word, error) {
	p, pairs, err := w.product(v)
	if err != nil {
		return nil, err
	}
	p.output = make([]int, len(pairs))
	for id, pair := range pairs {
		if p.output[id], err = Evaluate(op, w.output[pair[0]], v.output[pair[1]]); err != nil {
			return nil, err
		}
	}
	return p.minimize(), nil
}

// CompareWord returns the automaton accepting the indices where
// (w op v) holds.
func (w *Word) CompareWord(v *Word, op string) (*Automaton, error) {
	if _, err := Holds(op, 0, 0); err != nil {
		return nil, err
	}
	p, pairs, err := w.product(v)
	if err != nil {
		return nil, err
	}
	m := &Automaton{
		alphabet: p.alphabet,
		lsd:      p.lsd,
		initial:  p.initial,
		final:    make([]bool, len(pairs)),
		delta:    p.delta,
	}
	for id, pair := range pairs {
		m.final[id], _ = Holds(op, w.output[pair[0]], v.output[pair[1]])
	}
	return m.Minimize(), nil
}

// product runs two words in parallel. The output of the result is left
// empty; pairs maps each state to the pair of states of w and v.
func (w *Word) product(v *Word) (*Word, [][2]int, error) {
	lsd, err := orientation(w.alphabet, w.lsd, v.alphabet, v.lsd)
	if err != nil {
		return nil, nil, err
	}
	al, pa, pb, err := merge(w.alphabet, v.alphabet)
	if err != nil {
		return nil, nil, err
	}
	size := al.size()
	p := &Word{alphabet: al, lsd: lsd}
	ids := make(map[[2]int]int)
	var pairs [][2]int
	add := func(pair [2]int) (int, bool) {
		if id, ok := ids[pair]; ok {
			return id, false
		}
		id := len(pairs)
		ids[pair] = id
		pairs = append(pairs, pair)
		p.delta = append(p.delta, make([]int, size))
		return id, true
	}
	p.initial, _ = add([2]int{w.initial, v.initial})
	work := deque.NewDeque()
	work.PushBack(p.initial)
	for !work.Empty() {
		id := work.PopFront().(int)
		pair := pairs[id]
		for letter := 0; letter < size; letter++ {
			target, created := add([2]int{w.delta[pair[0]][pa[letter]], v.delta[pair[1]][pb[letter]]})
			p.delta[id][letter] = target
			if created {
				work.PushBack(target)
			}
		}
	}
	return p, pairs, nil
}

// minimize merges states with equal output and equal future behaviour.
func (w *Word) minimize() *Word {
	seen := make([]bool, len(w.output))
	seen[w.initial] = true
	order := []int{w.initial}
	for i := 0; i < len(order); i++ {
		for _, r := range w.delta[order[i]] {
			if !seen[r] {
				seen[r] = true
				order = append(order, r)
			}
		}
	}
	renum := make([]int, len(w.output))
	for i, q := range order {
		renum[q] = i
	}
	delta := make([][]int, len(order))
	class := make([]int, len(order))
	outIDs := make(map[int]int)
	for i, q := range order {
		delta[i] = make([]int, len(w.delta[q]))
		for l, r := range w.delta[q] {
			delta[i][l] = renum[r]
		}
		id, ok := outIDs[w.output[q]]
		if !ok {
			id = len(outIDs)
			outIDs[w.output[q]] = id
		}
		class[i] = id
	}
	class = refine(delta, class)
	n := distinct(class)
	m := &Word{
		alphabet: w.alphabet,
		lsd:      w.lsd,
		initial:  class[0],
		delta:    make([][]int, n),
		output:   make([]int, n),
	}
	for i, row := range delta {
		c := class[i]
		if m.delta[c] != nil {
			continue
		}
		m.output[c] = w.output[order[i]]
		m.delta[c] = make([]int, len(row))
		for l, r := range row {
			m.delta[c][l] = class[r]
		}
	}
	return m
}

func (w *Word) String() string {
	return fmt.Sprintf("word[%v states=%d outputs=%v]", w.labels, len(w.output), w.Outputs())
}
