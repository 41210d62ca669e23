package autoseq

import "github.com/npillmayer/autoseq/automaton"

// ThueMorse returns the Thue-Morse word 0110100110010110… over msd_2,
// indexed by track "n". T[n] is the parity of the number of 1s in the
// binary representation of n.
func ThueMorse() *automaton.Word {
	b := automaton.NewBuilder([]string{"n"}, []int{2}, false)
	even, odd := b.AddState(false), b.AddState(false)
	b.Transition(even, []int{0}, even).Transition(even, []int{1}, odd)
	b.Transition(odd, []int{0}, odd).Transition(odd, []int{1}, even)
	return mustWord(b.BuildWord(even, []int{0, 1}))
}

// RudinShapiro returns the Rudin-Shapiro word over msd_2, indexed by track
// "n", with outputs 0 and 1 in place of +1 and -1. RS[n] is the parity of
// the number of (possibly overlapping) blocks 11 in the binary
// representation of n.
func RudinShapiro() *automaton.Word {
	b := automaton.NewBuilder([]string{"n"}, []int{2}, false)
	// states track the parity so far and the last digit read
	q := [2][2]int{}
	for parity := 0; parity < 2; parity++ {
		for last := 0; last < 2; last++ {
			q[parity][last] = b.AddState(false)
		}
	}
	output := make([]int, 4)
	for parity := 0; parity < 2; parity++ {
		for last := 0; last < 2; last++ {
			output[q[parity][last]] = parity
			for d := 0; d < 2; d++ {
				b.Transition(q[parity][last], []int{d}, q[parity^(last&d)][d])
			}
		}
	}
	return mustWord(b.BuildWord(q[0][0], output))
}

// PeriodDoubling returns the period-doubling word 1011101010111…
// over msd_2, indexed by track "n". PD[n] is 1 if the number of trailing
// 1s in the binary representation of n is even.
func PeriodDoubling() *automaton.Word {
	b := automaton.NewBuilder([]string{"n"}, []int{2}, false)
	even, odd := b.AddState(false), b.AddState(false)
	for _, q := range []int{even, odd} {
		b.Transition(q, []int{0}, even)
	}
	b.Transition(even, []int{1}, odd).Transition(odd, []int{1}, even)
	return mustWord(b.BuildWord(even, []int{1, 0}))
}

func mustWord(w *automaton.Word, err error) *automaton.Word {
	if err != nil {
		panic(err)
	}
	return w
}
