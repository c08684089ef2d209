package foldtree

import (
	"cmp"

	"github.com/foldtree/foldtree/abstract"
)

type sumCombiner[T Number] struct{}

func (sumCombiner[T]) Identity() T {
	var zero T
	return zero
}

func (sumCombiner[T]) Combine(a, b T) T { return a + b }

// Sum returns the combiner for addition with identity zero.
func Sum[T Number]() abstract.Combiner[T] { return sumCombiner[T]{} }

type sumInverter[T Number] struct{ sumCombiner[T] }

func (sumInverter[T]) Invert(s T) T { return -s }

// SumInverter returns the addition combiner extended with negation,
// making it a group; the Fenwick tree needs this for Set, Get and
// RangeFold.
func SumInverter[T Number]() abstract.Inverter[T] { return sumInverter[T]{} }

type minCombiner[T cmp.Ordered] struct{ top T }

func (m minCombiner[T]) Identity() T    { return m.top }
func (minCombiner[T]) Combine(a, b T) T { return min(a, b) }

// Min returns the combiner taking the smaller element. top is the
// identity and must compare greater than or equal to every element the
// structure will hold.
func Min[T cmp.Ordered](top T) abstract.Combiner[T] { return minCombiner[T]{top: top} }

type maxCombiner[T cmp.Ordered] struct{ bottom T }

func (m maxCombiner[T]) Identity() T    { return m.bottom }
func (maxCombiner[T]) Combine(a, b T) T { return max(a, b) }

// Max returns the combiner taking the larger element. bottom is the
// identity and must compare less than or equal to every element the
// structure will hold.
func Max[T cmp.Ordered](bottom T) abstract.Combiner[T] { return maxCombiner[T]{bottom: bottom} }

// Weighted pairs a sum with the number of elements it spans, so the Add
// action can scale a range addition by segment width.
type Weighted[T Number] struct {
	Sum T
	Len int
}

// WeightedOf wraps a single element as a width-1 segment.
func WeightedOf[T Number](v T) Weighted[T] { return Weighted[T]{Sum: v, Len: 1} }

// WeightedSlice wraps every element of v as a width-1 segment.
func WeightedSlice[T Number](v []T) []Weighted[T] {
	w := make([]Weighted[T], len(v))
	for i, x := range v {
		w[i] = WeightedOf(x)
	}
	return w
}

type weightedSum[T Number] struct{}

func (weightedSum[T]) Identity() Weighted[T] { return Weighted[T]{} }
func (weightedSum[T]) Combine(a, b Weighted[T]) Weighted[T] {
	return Weighted[T]{Sum: a.Sum + b.Sum, Len: a.Len + b.Len}
}

// WeightedSum returns the combiner adding both the sums and the widths
// of two segments.
func WeightedSum[T Number]() abstract.Combiner[Weighted[T]] { return weightedSum[T]{} }
