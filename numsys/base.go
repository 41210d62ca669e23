package numsys

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is the numeration system of base k ≥ 2.
type Base struct {
	k   int
	lsd bool
}

// New creates the numeration system of base k. If lsd is set, numbers are
// read least significant digit first.
func New(k int, lsd bool) (*Base, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: base %d", ErrUnknownSystem, k)
	}
	return &Base{k: k, lsd: lsd}, nil
}

// Parse creates a numeration system from its name, e.g. "msd_2" or "lsd_10".
func Parse(name string) (*Base, error) {
	var lsd bool
	switch {
	case strings.HasPrefix(name, "msd_"):
	case strings.HasPrefix(name, "lsd_"):
		lsd = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	k, err := strconv.Atoi(name[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return New(k, lsd)
}

// MustParse is like Parse, but panics on unknown names.
func MustParse(name string) *Base {
	b, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Name is the name of the numeration system, e.g. "msd_2".
func (b *Base) Name() string {
	if b.lsd {
		return "lsd_" + strconv.Itoa(b.k)
	}
	return "msd_" + strconv.Itoa(b.k)
}

// Radix is the base k.
func (b *Base) Radix() int {
	return b.k
}

// LSD is true if numbers are read least significant digit first.
func (b *Base) LSD() bool {
	return b.lsd
}

func (b *Base) String() string {
	return b.Name()
}
