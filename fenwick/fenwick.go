// Package fenwick implements a Fenwick (binary indexed) tree over a
// monoid: point operations and prefix folds in O(log n) on a single
// array, with appends in amortized O(1). When the combiner is a group
// (implements abstract.Inverter), point reads, point writes and general
// range folds become available by subtracting prefixes.
package fenwick

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/foldtree/foldtree/abstract"
)

// Tree is a Fenwick tree. The backing array is 1-indexed: slot i holds
// the fold of the block (i - lsb(i), i], and slot 0 holds the identity.
type Tree[S any] struct {
	m    abstract.Combiner[S]
	inv  abstract.Inverter[S] // nil when m has no inverse
	data []S
}

// New returns a tree of n elements, all set to the combiner's identity.
func New[S any](m abstract.Combiner[S], n int) *Tree[S] {
	data := make([]S, n+1)
	id := m.Identity()
	for i := range data {
		data[i] = id
	}
	return newTree(m, data)
}

// FromSlice returns a tree initialized from v, built in place in O(n):
// each block folds into the enclosing block one position of higher rank.
func FromSlice[S any](m abstract.Combiner[S], v []S) *Tree[S] {
	n := len(v)
	data := make([]S, n+1)
	data[0] = m.Identity()
	copy(data[1:], v)
	for i := 1; i <= n; i++ {
		if j := i + i&(-i); j <= n {
			data[j] = m.Combine(data[j], data[i])
		}
	}
	return newTree(m, data)
}

// WithCapacity returns an empty tree with room for n elements.
func WithCapacity[S any](m abstract.Combiner[S], n int) *Tree[S] {
	data := make([]S, 1, n+1)
	data[0] = m.Identity()
	return newTree(m, data)
}

func newTree[S any](m abstract.Combiner[S], data []S) *Tree[S] {
	t := &Tree[S]{m: m, data: data}
	t.inv, _ = m.(abstract.Inverter[S])
	return t
}

// Grow reserves capacity for at least additional more elements.
func (t *Tree[S]) Grow(additional int) {
	t.data = slices.Grow(t.data, additional)
}

// Push appends an element, folding the preceding blocks the new slot
// encloses into it. Amortized O(1) per appended element.
func (t *Tree[S]) Push(x S) {
	i := len(t.data)
	lsb := i & (-i)
	for step := 1; step < lsb; step <<= 1 {
		x = t.m.Combine(t.data[i-step], x)
	}
	t.data = append(t.data, x)
}

// Pop removes the last element, reporting whether the tree was non-empty.
// The removed value itself is only recoverable with an Inverter.
func (t *Tree[S]) Pop() bool {
	if t.Len() == 0 {
		return false
	}
	t.data = t.data[:len(t.data)-1]
	return true
}

// Operate replaces the element at position i with Combine(a[i], x).
func (t *Tree[S]) Operate(i int, x S) {
	t.checkIndex(i)
	for i++; i < len(t.data); i += i & (-i) {
		t.data[i] = t.m.Combine(t.data[i], x)
	}
}

// PrefixFold returns Combine(a[0], ..., a[r-1]), or the identity when r
// is 0, combining blocks from the lowest index forward.
func (t *Tree[S]) PrefixFold(r int) S {
	if r < 0 || r > t.Len() {
		panic(fmt.Sprintf("fenwick: index out of bounds: r=%d, len=%d", r, t.Len()))
	}
	res := t.data[r]
	for r > 0 {
		r &= r - 1
		res = t.m.Combine(t.data[r], res)
	}
	return res
}

// AllFold returns the fold of the whole sequence.
func (t *Tree[S]) AllFold() S {
	return t.PrefixFold(t.Len())
}

// LowerBound returns the smallest r such that pred(PrefixFold(r)) is
// true, or Len() if no such r exists. pred must be monotonic: once true
// for some r it must stay true for every larger r. Runs in O(log n) by
// binary lifting over block folds.
func (t *Tree[S]) LowerBound(pred func(S) bool) int {
	acc := t.m.Identity()
	if pred(acc) {
		return 0
	}
	n := t.Len()
	if n == 0 {
		return 0
	}
	pos := 0
	for k := 1 << (bits.Len(uint(n)) - 1); k > 0; k >>= 1 {
		if next := pos + k; next <= n {
			if v := t.m.Combine(acc, t.data[next]); !pred(v) {
				acc = v
				pos = next
			}
		}
	}
	if pos < n {
		return pos + 1
	}
	return n
}

// Set writes x at position i. Requires an Inverter combiner.
func (t *Tree[S]) Set(i int, x S) {
	t.checkIndex(i)
	inv := t.inverter()
	diff := t.m.Combine(inv.Invert(t.Get(i)), x)
	t.Operate(i, diff)
}

// Get returns the element at position i. Requires an Inverter combiner.
func (t *Tree[S]) Get(i int) S {
	t.checkIndex(i)
	inv := t.inverter()
	return t.m.Combine(inv.Invert(t.PrefixFold(i)), t.PrefixFold(i+1))
}

// RangeFold returns Combine(a[l], ..., a[r-1]) over the given range, or
// the identity for an empty range. Requires an Inverter combiner.
func (t *Tree[S]) RangeFold(r abstract.Range) S {
	lo, hi := r.HalfOpen(t.Len())
	inv := t.inverter()
	return t.m.Combine(inv.Invert(t.PrefixFold(lo)), t.PrefixFold(hi))
}

// Len returns the number of elements.
func (t *Tree[S]) Len() int { return len(t.data) - 1 }

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[S]) IsEmpty() bool { return t.Len() == 0 }

func (t *Tree[S]) inverter() abstract.Inverter[S] {
	if t.inv == nil {
		panic("fenwick: combiner does not implement abstract.Inverter")
	}
	return t.inv
}

func (t *Tree[S]) checkIndex(i int) {
	if i < 0 || i >= t.Len() {
		panic(fmt.Sprintf("fenwick: index out of bounds: i=%d, len=%d", i, t.Len()))
	}
}
