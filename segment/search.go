package segment

// Monotonic boundary search. Both searches assume the predicate's truth
// is monotonic in the width of the fold: once pred holds for some fold it
// must hold for every wider fold on the same side. Under that assumption
// the boundary is located in a single O(log n) walk, absorbing whole
// nodes while pred is still false and descending into the first node
// whose aggregate flips it, without materializing intermediate folds.

// MaxRight returns the smallest r in [l, n] such that pred holds for the
// fold of [l, r), or n if no such r exists. An empty fold is consulted
// first, so pred(identity) == true answers l immediately.
func (t *Tree[S]) MaxRight(l int, pred func(S) bool) int {
	t.checkPosition(l)
	if pred(t.m.Identity()) {
		return l
	}
	if l == t.n {
		return t.n
	}
	acc := t.m.Identity()
	i := l + t.size
	for {
		for i%2 == 0 {
			i >>= 1
		}
		if pred(t.m.Combine(acc, t.data[i])) {
			for i < t.size {
				i = 2 * i
				if v := t.m.Combine(acc, t.data[i]); !pred(v) {
					acc = v
					i++
				}
			}
			return i - t.size + 1
		}
		acc = t.m.Combine(acc, t.data[i])
		i++
		if i&(i-1) == 0 {
			return t.n
		}
	}
}

// MinLeft returns the largest l in [0, r] such that pred holds for the
// fold of [l, r), or 0 if no such l exists. An empty fold is consulted
// first, so pred(identity) == true answers r immediately.
func (t *Tree[S]) MinLeft(r int, pred func(S) bool) int {
	t.checkPosition(r)
	if pred(t.m.Identity()) {
		return r
	}
	if r == 0 {
		return 0
	}
	acc := t.m.Identity()
	i := r + t.size
	for {
		i--
		for i > 1 && i%2 == 1 {
			i >>= 1
		}
		if pred(t.m.Combine(t.data[i], acc)) {
			for i < t.size {
				i = 2*i + 1
				if v := t.m.Combine(t.data[i], acc); !pred(v) {
					acc = v
					i--
				}
			}
			return i - t.size
		}
		acc = t.m.Combine(t.data[i], acc)
		if i&(i-1) == 0 {
			return 0
		}
	}
}

// MaxRight is the lazy-tree counterpart of Tree.MaxRight. Pending actions
// above the start leaf are pushed before the walk, and each node the
// descent enters is pushed first so its children's aggregates are current.
func (t *LazyTree[S, F]) MaxRight(l int, pred func(S) bool) int {
	t.checkPosition(l)
	if pred(t.m.Identity()) {
		return l
	}
	if l == t.n {
		return t.n
	}
	i := l + t.size
	t.pushAncestors(i)
	acc := t.m.Identity()
	for {
		for i%2 == 0 {
			i >>= 1
		}
		if pred(t.m.Combine(acc, t.data[i])) {
			for i < t.size {
				t.push(i)
				i = 2 * i
				if v := t.m.Combine(acc, t.data[i]); !pred(v) {
					acc = v
					i++
				}
			}
			return i - t.size + 1
		}
		acc = t.m.Combine(acc, t.data[i])
		i++
		if i&(i-1) == 0 {
			return t.n
		}
	}
}

// MinLeft is the lazy-tree counterpart of Tree.MinLeft.
func (t *LazyTree[S, F]) MinLeft(r int, pred func(S) bool) int {
	t.checkPosition(r)
	if pred(t.m.Identity()) {
		return r
	}
	if r == 0 {
		return 0
	}
	i := r + t.size
	t.pushAncestors(i - 1)
	acc := t.m.Identity()
	for {
		i--
		for i > 1 && i%2 == 1 {
			i >>= 1
		}
		if pred(t.m.Combine(t.data[i], acc)) {
			for i < t.size {
				t.push(i)
				i = 2*i + 1
				if v := t.m.Combine(t.data[i], acc); !pred(v) {
					acc = v
					i--
				}
			}
			return i - t.size
		}
		acc = t.m.Combine(t.data[i], acc)
		if i&(i-1) == 0 {
			return 0
		}
	}
}
