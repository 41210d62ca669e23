package numsys

import (
	"fmt"

	"github.com/npillmayer/autoseq/automaton"
)

// Digits returns the representation of n ≥ 0 with at least width digits,
// in reading order of the numeration system.
func (b *Base) Digits(n int, width int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	var digits []int // least significant first
	for ; n > 0; n /= b.k {
		digits = append(digits, n%b.k)
	}
	for len(digits) < width {
		digits = append(digits, 0)
	}
	if !b.lsd {
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	}
	return digits, nil
}

// Encode creates the word representing a tuple of numbers, with tracks
// ordered as labels. All tracks are padded to the same length.
func (b *Base) Encode(values map[string]int, labels []string) ([][]int, error) {
	width := 0
	for _, l := range labels {
		v, ok := values[l]
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrMissingValue, l)
		}
		d, err := b.Digits(v, 0)
		if err != nil {
			return nil, err
		}
		if len(d) > width {
			width = len(d)
		}
	}
	word := make([][]int, width)
	for i := range word {
		word[i] = make([]int, len(labels))
	}
	for t, l := range labels {
		d, _ := b.Digits(values[l], width)
		for i := range d {
			word[i][t] = d[i]
		}
	}
	return word, nil
}

// Accepts is true if m accepts the tuple of values. Values for variables
// which are not tracks of m are ignored.
func (b *Base) Accepts(m *automaton.Automaton, values map[string]int) (bool, error) {
	word, err := b.Encode(values, m.Labels())
	if err != nil {
		return false, err
	}
	return m.Accepts(word), nil
}

// Output is the output of word w at the index tuple values.
func (b *Base) Output(w *automaton.Word, values map[string]int) (int, error) {
	word, err := b.Encode(values, w.Labels())
	if err != nil {
		return 0, err
	}
	return w.Output(word)
}
