package segment

import (
	"fmt"
	"math/bits"

	"github.com/foldtree/foldtree/abstract"
)

// LazyTree is a segment tree with lazy propagation: range folds as in
// Tree, plus range application of a composable action, all in O(log n).
//
// It shares Tree's storage scheme and adds a parallel array of pending
// actions on internal nodes. The invariant tying the two together: data[i]
// already reflects lazy[i] applied to node i's whole subtree aggregate,
// while the children of i do not yet reflect it. A freshly built or
// freshly pushed node has the identity action pending.
type LazyTree[S, F any] struct {
	m    abstract.Combiner[S]
	a    abstract.Action[S, F]
	data []S
	lazy []F // internal nodes only, slots 1..size-1
	n    int
	size int
	log  int
}

// NewLazy returns a lazy tree of n elements, all set to the combiner's
// identity, with no pending actions.
func NewLazy[S, F any](m abstract.Combiner[S], a abstract.Action[S, F], n int) *LazyTree[S, F] {
	size, log := treeSize(n)
	data := make([]S, 2*size)
	id := m.Identity()
	for i := range data {
		data[i] = id
	}
	lazy := make([]F, size)
	fid := a.Identity()
	for i := range lazy {
		lazy[i] = fid
	}
	return &LazyTree[S, F]{m: m, a: a, data: data, lazy: lazy, n: n, size: size, log: log}
}

// FromSliceLazy returns a lazy tree initialized from v, built bottom-up.
func FromSliceLazy[S, F any](m abstract.Combiner[S], a abstract.Action[S, F], v []S) *LazyTree[S, F] {
	t := NewLazy(m, a, len(v))
	copy(t.data[t.size:], v)
	for i := t.size - 1; i >= 1; i-- {
		t.data[i] = m.Combine(t.data[2*i], t.data[2*i+1])
	}
	return t
}

// push moves the pending action on node i down to its children: each
// child's aggregate absorbs it, and internal children fold it into their
// own pending action with the parent's action composed in front. Node i
// is left with the identity pending, so pushing again is a no-op.
func (t *LazyTree[S, F]) push(i int) {
	f := t.lazy[i]
	t.lazy[i] = t.a.Identity()
	l, r := 2*i, 2*i+1
	t.data[l] = t.a.Act(f, t.data[l])
	t.data[r] = t.a.Act(f, t.data[r])
	if l < t.size {
		t.lazy[l] = t.a.Compose(f, t.lazy[l])
		t.lazy[r] = t.a.Compose(f, t.lazy[r])
	}
}

// update recomputes node i's aggregate from its children, after a
// mutation somewhere below i.
func (t *LazyTree[S, F]) update(i int) {
	t.data[i] = t.m.Combine(t.data[2*i], t.data[2*i+1])
}

// pushAncestors pushes every ancestor of array slot i, root to leaf, so
// no stale pending action shadows a write to i.
func (t *LazyTree[S, F]) pushAncestors(i int) {
	for s := t.log; s >= 1; s-- {
		t.push(i >> s)
	}
}

// updateAncestors refreshes every ancestor of array slot i, leaf to root.
func (t *LazyTree[S, F]) updateAncestors(i int) {
	for i > 1 {
		i >>= 1
		t.update(i)
	}
}

// Set writes x at position i.
func (t *LazyTree[S, F]) Set(i int, x S) {
	t.checkIndex(i)
	i += t.size
	t.pushAncestors(i)
	t.data[i] = x
	t.updateAncestors(i)
}

// Operate replaces the element at position i with Combine(a[i], x).
func (t *LazyTree[S, F]) Operate(i int, x S) {
	t.checkIndex(i)
	i += t.size
	t.pushAncestors(i)
	t.data[i] = t.m.Combine(t.data[i], x)
	t.updateAncestors(i)
}

// Apply transforms the element at position i with action f.
func (t *LazyTree[S, F]) Apply(i int, f F) {
	t.checkIndex(i)
	i += t.size
	t.pushAncestors(i)
	t.data[i] = t.a.Act(f, t.data[i])
	t.updateAncestors(i)
}

// Get returns the element at position i, pushing every pending ancestor
// action down first.
func (t *LazyTree[S, F]) Get(i int) S {
	t.checkIndex(i)
	i += t.size
	t.pushAncestors(i)
	return t.data[i]
}

// RangeApply transforms every element in the range with action f.
//
// Ancestors of both boundaries are pushed first so the convergence walk
// below never crosses an un-pushed node. Each node fully inside the range
// then absorbs f into its aggregate and, if internal, registers it as
// pending instead of descending further; that deferral is what keeps the
// cost at O(log n). Finally both boundary paths are refreshed upward.
func (t *LazyTree[S, F]) RangeApply(r abstract.Range, f F) {
	lo, hi := r.HalfOpen(t.n)
	if lo == hi {
		return
	}
	l, h := lo+t.size, hi+t.size
	l >>= bits.TrailingZeros(uint(l))
	h >>= bits.TrailingZeros(uint(h))

	for s := bits.Len(uint(l)) - 1; s >= 1; s-- {
		t.push(l >> s)
	}
	for s := bits.Len(uint(h-1)) - 1; s >= 1; s-- {
		t.push((h - 1) >> s)
	}

	cl, ch := l, h
	for {
		if cl >= ch {
			t.data[cl] = t.a.Act(f, t.data[cl])
			if cl < t.size {
				t.lazy[cl] = t.a.Compose(f, t.lazy[cl])
			}
			cl++
			cl >>= bits.TrailingZeros(uint(cl))
		} else {
			ch--
			t.data[ch] = t.a.Act(f, t.data[ch])
			if ch < t.size {
				t.lazy[ch] = t.a.Compose(f, t.lazy[ch])
			}
			ch >>= bits.TrailingZeros(uint(ch))
		}
		if cl == ch {
			break
		}
	}

	for l > 1 {
		l >>= 1
		t.update(l)
	}
	h--
	for h > 1 {
		h >>= 1
		t.update(h)
	}
}

// RangeFold returns Combine(a[l], ..., a[r-1]) over the given range, or
// the identity for an empty range. Folding never mutates the tree:
// pending actions on ancestors strictly above the converged nodes are
// applied to the locally accumulated partial aggregates on the way back
// toward the root, in root-to-leaf composition order, rather than being
// pushed into storage.
func (t *LazyTree[S, F]) RangeFold(r abstract.Range) S {
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
			i := l >> 1
			left = t.m.Combine(left, t.data[l])
			l++
			l >>= bits.TrailingZeros(uint(l))
			for i > l>>1 {
				left = t.a.Act(t.lazy[i], left)
				i >>= 1
			}
		} else {
			i := h >> 1
			h--
			right = t.m.Combine(t.data[h], right)
			h >>= bits.TrailingZeros(uint(h))
			for i > h>>1 {
				right = t.a.Act(t.lazy[i], right)
				i >>= 1
			}
		}
		if l == h {
			break
		}
	}
	res := t.m.Combine(left, right)
	for i := l >> 1; i > 0; i >>= 1 {
		res = t.a.Act(t.lazy[i], res)
	}
	return res
}

// AllFold returns the fold of the whole sequence in O(1).
func (t *LazyTree[S, F]) AllFold() S {
	return t.data[1]
}

// Len returns the number of elements.
func (t *LazyTree[S, F]) Len() int { return t.n }

// IsEmpty reports whether the tree holds no elements.
func (t *LazyTree[S, F]) IsEmpty() bool { return t.n == 0 }

func (t *LazyTree[S, F]) checkIndex(i int) {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("segment: index out of bounds: i=%d, len=%d", i, t.n))
	}
}

func (t *LazyTree[S, F]) checkPosition(i int) {
	if i < 0 || i > t.n {
		panic(fmt.Sprintf("segment: position out of bounds: i=%d, len=%d", i, t.n))
	}
}
