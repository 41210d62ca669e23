package automaton

// StripLeadingZeros restricts m to words which are canonical representations
// with respect to the named tracks: the first symbol read (msd) or the last
// symbol read (lsd) must carry a non-zero digit on at least one of the named
// tracks. The empty word is kept.
func (m *Automaton) StripLeadingZeros(names ...string) *Automaton {
	if m.lsd {
		return m.Reverse().StripLeadingZeros(names...).Reverse()
	}
	var tracks []int
	for _, name := range names {
		if i := m.index(name); i >= 0 {
			tracks = append(tracks, i)
		}
	}
	c := m.clone()
	start := len(c.final)
	c.final = append(c.final, m.final[m.initial])
	row := make([]int, c.size())
	digits := make([]int, 0, len(c.bases))
	for l := range row {
		row[l] = -1
		digits = c.decode(l, digits)
		for _, t := range tracks {
			if digits[t] != 0 {
				row[l] = m.delta[m.initial][l]
				break
			}
		}
	}
	c.delta = append(c.delta, row)
	c.initial = start
	return c.Minimize()
}

// Infinite is true if m accepts infinitely many words. Use StripLeadingZeros
// first to count tuples instead of their padded representations.
func (m *Automaton) Infinite() bool {
	t := m.trim()
	if t == nil {
		return false
	}
	// every state of t is useful, so any cycle yields infinitely many words
	const (
		white = iota
		grey
		black
	)
	color := make([]int, len(t.final))
	type frame struct{ q, l int }
	for root := range t.final {
		if color[root] != white {
			continue
		}
		stack := []frame{{root, 0}}
		color[root] = grey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.l == len(t.delta[top.q]) {
				color[top.q] = black
				stack = stack[:len(stack)-1]
				continue
			}
			r := t.delta[top.q][top.l]
			top.l++
			if r < 0 {
				continue
			}
			switch color[r] {
			case grey:
				return true
			case white:
				color[r] = grey
				stack = append(stack, frame{r, 0})
			}
		}
	}
	return false
}
