// Package segment implements array-encoded segment trees: Tree answers
// range folds under point updates, LazyTree additionally applies a
// composable action to whole ranges, both in O(log n).
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but read operations are, provided no writer is active.
package segment

import (
	"fmt"
	"math/bits"

	"github.com/foldtree/foldtree/abstract"
)

// Tree is a segment tree over a monoid: point updates and range folds in
// O(log n). The backing array is 1-indexed with the root at 1; node i has
// children 2i and 2i+1, and the leaf for position j lives at capacity+j.
// Capacity is the smallest power of two >= n; the padding leaves beyond n
// hold the identity and are never addressable.
type Tree[S any] struct {
	m    abstract.Combiner[S]
	data []S
	n    int
	size int
}

// New returns a tree of n elements, all set to the combiner's identity.
func New[S any](m abstract.Combiner[S], n int) *Tree[S] {
	size, _ := treeSize(n)
	data := make([]S, 2*size)
	id := m.Identity()
	for i := range data {
		data[i] = id
	}
	return &Tree[S]{m: m, data: data, n: n, size: size}
}

// FromSlice returns a tree initialized from v, built bottom-up in O(n).
func FromSlice[S any](m abstract.Combiner[S], v []S) *Tree[S] {
	t := New(m, len(v))
	copy(t.data[t.size:], v)
	for i := t.size - 1; i >= 1; i-- {
		t.data[i] = m.Combine(t.data[2*i], t.data[2*i+1])
	}
	return t
}

// Set writes x at position i and refreshes every ancestor.
func (t *Tree[S]) Set(i int, x S) {
	t.checkIndex(i)
	i += t.size
	t.data[i] = x
	for i > 1 {
		i >>= 1
		t.data[i] = t.m.Combine(t.data[2*i], t.data[2*i+1])
	}
}

// Operate replaces the element at position i with Combine(a[i], x).
func (t *Tree[S]) Operate(i int, x S) {
	t.checkIndex(i)
	i += t.size
	t.data[i] = t.m.Combine(t.data[i], x)
	for i > 1 {
		i >>= 1
		t.data[i] = t.m.Combine(t.data[2*i], t.data[2*i+1])
	}
}

// Get returns the element at position i in O(1).
func (t *Tree[S]) Get(i int) S {
	t.checkIndex(i)
	return t.data[t.size+i]
}

// RangeFold returns Combine(a[l], ..., a[r-1]) over the given range, or
// the identity for an empty range. The fold preserves left-to-right
// evaluation order, so non-commutative combiners are safe.
//
// The walk is the non-recursive boundary convergence: both edges are
// mapped to leaf slots, each repeatedly jumps to the highest ancestor it
// fully covers, and partial aggregates accumulate from the left edge
// forward and the right edge backward until the pointers meet.
func (t *Tree[S]) RangeFold(r abstract.Range) S {
	lo, hi := r.HalfOpen(t.n)
	if lo == hi {
		return t.m.Identity()
	}
	l, h := lo+t.size, hi+t.size
	l >>= bits.TrailingZeros(uint(l))
	h >>= bits.TrailingZeros(uint(h))

	left, right := t.m.Identity(), t.m.Identity()
	for {
		if l >= h {
			left = t.m.Combine(left, t.data[l])
			l++
			l >>= bits.TrailingZeros(uint(l))
		} else {
			h--
			right = t.m.Combine(t.data[h], right)
			h >>= bits.TrailingZeros(uint(h))
		}
		if l == h {
			break
		}
	}
	return t.m.Combine(left, right)
}

// AllFold returns the fold of the whole sequence in O(1).
func (t *Tree[S]) AllFold() S {
	return t.data[1]
}

// Len returns the number of elements.
func (t *Tree[S]) Len() int { return t.n }

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[S]) IsEmpty() bool { return t.n == 0 }

func (t *Tree[S]) checkIndex(i int) {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("segment: index out of bounds: i=%d, len=%d", i, t.n))
	}
}

func (t *Tree[S]) checkPosition(i int) {
	if i < 0 || i > t.n {
		panic(fmt.Sprintf("segment: position out of bounds: i=%d, len=%d", i, t.n))
	}
}

// treeSize returns the power-of-two capacity for n elements and its log.
// n = 0 still gets capacity 1 so the root slot exists and whole-tree folds
// read the identity.
func treeSize(n int) (size, log int) {
	size = 1
	for size < n {
		size <<= 1
		log++
	}
	return size, log
}
