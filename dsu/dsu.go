// Package dsu implements a disjoint-set union with path halving and
// union by size, giving amortized near-constant time per operation.
package dsu

import "fmt"

// Set partitions the elements 0..n-1 into disjoint sets. A single array
// encodes the forest: a negative entry marks a root and stores the
// negated size of its set, a non-negative entry is the parent index.
type Set struct {
	parent     []int32
	components int
}

// New returns a set of n elements, each initially alone in its own set.
// n must be less than 2^31.
func New(n int) *Set {
	if n >= 1<<31 {
		panic(fmt.Sprintf("dsu: n must be less than 2^31: n=%d", n))
	}
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = -1
	}
	return &Set{parent: parent, components: n}
}

// Root returns the representative of the set containing x, halving the
// path on the way up.
func (s *Set) Root(x int) int {
	s.checkIndex(x)
	for s.parent[x] >= 0 {
		p := int(s.parent[x])
		if s.parent[p] >= 0 {
			s.parent[x] = s.parent[p]
		}
		x = p
	}
	return x
}

// IsRoot reports whether x is the representative of its set.
func (s *Set) IsRoot(x int) bool {
	s.checkIndex(x)
	return s.parent[x] < 0
}

// Unite merges the sets containing x and y, attaching the smaller set
// under the larger. It reports whether the two were in different sets.
func (s *Set) Unite(x, y int) bool {
	rx, ry := s.Root(x), s.Root(y)
	if rx == ry {
		return false
	}
	if s.parent[rx] > s.parent[ry] {
		rx, ry = ry, rx
	}
	s.parent[rx] += s.parent[ry]
	s.parent[ry] = int32(rx)
	s.components--
	return true
}

// Same reports whether x and y belong to the same set.
func (s *Set) Same(x, y int) bool {
	return s.Root(x) == s.Root(y)
}

// Size returns the number of elements in the set containing x.
func (s *Set) Size(x int) int {
	return int(-s.parent[s.Root(x)])
}

// Groups returns every set as a slice of its members in ascending order,
// the sets themselves ordered by representative.
func (s *Set) Groups() [][]int {
	byRoot := make([][]int, len(s.parent))
	for i := range s.parent {
		r := s.Root(i)
		byRoot[r] = append(byRoot[r], i)
	}
	groups := make([][]int, 0, s.components)
	for _, g := range byRoot {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Components returns the number of disjoint sets.
func (s *Set) Components() int { return s.components }

// Len returns the total number of elements.
func (s *Set) Len() int { return len(s.parent) }

// IsEmpty reports whether the set holds no elements.
func (s *Set) IsEmpty() bool { return len(s.parent) == 0 }

func (s *Set) checkIndex(x int) {
	if x < 0 || x >= len(s.parent) {
		panic(fmt.Sprintf("dsu: index out of bounds: x=%d, len=%d", x, len(s.parent)))
	}
}
