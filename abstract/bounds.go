package abstract

import "fmt"

type boundKind uint8

const (
	boundIncluded boundKind = iota
	boundExcluded
	boundUnbounded
)

// Bound is one endpoint of a Range: a position that is included, excluded,
// or absent entirely.
type Bound struct {
	index int
	kind  boundKind
}

// Included returns a bound that contains position i.
func Included(i int) Bound { return Bound{index: i, kind: boundIncluded} }

// Excluded returns a bound that stops just short of position i.
func Excluded(i int) Bound { return Bound{index: i, kind: boundExcluded} }

// Unbounded returns a bound that extends to the edge of the sequence.
func Unbounded() Bound { return Bound{kind: boundUnbounded} }

// Range is a pair of bounds over positions of a sequence. The zero value
// covers the whole sequence.
type Range struct {
	start, end Bound
}

// NewRange builds a range from explicit bounds.
func NewRange(start, end Bound) Range { return Range{start: start, end: end} }

// Span returns the half-open range [l, r).
func Span(l, r int) Range { return Range{start: Included(l), end: Excluded(r)} }

// Closed returns the closed range [l, r].
func Closed(l, r int) Range { return Range{start: Included(l), end: Included(r)} }

// Prefix returns the range [0, r).
func Prefix(r int) Range { return Range{start: Unbounded(), end: Excluded(r)} }

// Suffix returns the range [l, n).
func Suffix(l int) Range { return Range{start: Included(l), end: Unbounded()} }

// All returns the range covering every position.
func All() Range { return Range{start: Unbounded(), end: Unbounded()} }

// HalfOpen resolves the range against a sequence of length n, returning
// half-open [lo, hi) indices with 0 <= lo <= hi <= n. It panics on an
// inverted or out-of-bounds range; validity is a caller precondition.
func (r Range) HalfOpen(n int) (lo, hi int) {
	switch r.start.kind {
	case boundUnbounded:
		lo = 0
	case boundIncluded:
		lo = r.start.index
	case boundExcluded:
		lo = r.start.index + 1
	}
	switch r.end.kind {
	case boundUnbounded:
		hi = n
	case boundIncluded:
		hi = r.end.index + 1
	case boundExcluded:
		hi = r.end.index
	}
	if lo < 0 || lo > hi {
		panic(fmt.Sprintf("abstract: left bound must be less than or equal to right bound: l=%d, r=%d", lo, hi))
	}
	if hi > n {
		panic(fmt.Sprintf("abstract: range out of bounds: r=%d, len=%d", hi, n))
	}
	return lo, hi
}
