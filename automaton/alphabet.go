package automaton

import "fmt"

// alphabet describes the input symbols of an automaton. A symbol is a vector
// of digits, one digit per track. Symbols are numbered in mixed radix with
// the first track being the least significant position; the all-zero symbol
// is always letter 0.
type alphabet struct {
	labels []string
	bases  []int
}

func (al alphabet) size() int {
	n := 1
	for _, b := range al.bases {
		n *= b
	}
	return n
}

// decode splits a letter into its digits, re-using the digits slice.
func (al alphabet) decode(letter int, digits []int) []int {
	digits = digits[:0]
	for _, b := range al.bases {
		digits = append(digits, letter%b)
		letter /= b
	}
	return digits
}

func (al alphabet) encode(digits []int) int {
	letter, radix := 0, 1
	for i, b := range al.bases {
		letter += digits[i] * radix
		radix *= b
	}
	return letter
}

func (al alphabet) index(label string) int {
	for i, l := range al.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func (al alphabet) copy() alphabet {
	return alphabet{
		labels: append([]string(nil), al.labels...),
		bases:  append([]int(nil), al.bases...),
	}
}

// projection maps every letter of al to the letter of sub carrying the same
// digits on sub's tracks. The labels of sub must be a subset of al's labels.
func (al alphabet) projection(sub alphabet) []int {
	pos := make([]int, len(sub.labels))
	for i, l := range sub.labels {
		pos[i] = al.index(l)
	}
	n := al.size()
	proj := make([]int, n)
	digits := make([]int, 0, len(al.bases))
	sd := make([]int, len(sub.labels))
	for letter := 0; letter < n; letter++ {
		digits = al.decode(letter, digits)
		for i, p := range pos {
			sd[i] = digits[p]
		}
		proj[letter] = sub.encode(sd)
	}
	return proj
}

// merge computes the union of two alphabets. Tracks of a come first, followed
// by the tracks of b not present in a. It returns the projections of the union
// onto a and b.
func merge(a, b alphabet) (alphabet, []int, []int, error) {
	u := a.copy()
	for i, l := range b.labels {
		if j := a.index(l); j >= 0 {
			if a.bases[j] != b.bases[i] {
				return alphabet{}, nil, nil, fmt.Errorf("%w: %s", ErrBaseMismatch, l)
			}
			continue
		}
		u.labels = append(u.labels, l)
		u.bases = append(u.bases, b.bases[i])
	}
	return u, u.projection(a), u.projection(b), nil
}
