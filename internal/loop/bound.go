package loop

import "strconv"

// Bound is the upper limit of a quantifier: a finite count or unbounded.
type Bound struct {
	n       int
	bounded bool
}

func Bounded(n int) Bound { return Bound{n: n, bounded: true} }

func Unbounded() Bound { return Bound{} }

// Value returns the finite limit; ok is false when the bound is unbounded.
func (b Bound) Value() (n int, ok bool) {
	return b.n, b.bounded
}

func (b Bound) IsUnbounded() bool { return !b.bounded }

func (b Bound) String() string {
	if !b.bounded {
		return "inf"
	}
	return strconv.Itoa(b.n)
}
