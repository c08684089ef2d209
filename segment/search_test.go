package segment

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/foldtree/foldtree"
	"github.com/foldtree/foldtree/abstract"
)

// bruteMaxRight scans prefix folds linearly: the smallest r in [l, n]
// whose fold satisfies pred, or n when none does.
func bruteMaxRight[S any](m abstract.Combiner[S], v []S, l int, pred func(S) bool) int {
	for r := l; r <= len(v); r++ {
		if pred(foldSlice(m, v, l, r)) {
			return r
		}
	}
	return len(v)
}

// bruteMinLeft scans suffix folds linearly: the largest l in [0, r]
// whose fold satisfies pred, or 0 when none does.
func bruteMinLeft[S any](m abstract.Combiner[S], v []S, r int, pred func(S) bool) int {
	for l := r; l >= 0; l-- {
		if pred(foldSlice(m, v, l, r)) {
			return l
		}
	}
	return 0
}

func TestTreeMaxRight(t *testing.T) {
	m := foldtree.Sum[int]()
	tr := FromSlice(m, []int{3, 1, 4, 1, 5})

	atLeast := func(k int) func(int) bool {
		return func(s int) bool { return s >= k }
	}

	assert.Equal(t, 0, tr.MaxRight(0, atLeast(0)), "pred true on identity answers l")
	assert.Equal(t, 1, tr.MaxRight(0, atLeast(1)))
	assert.Equal(t, 2, tr.MaxRight(0, atLeast(4)))
	assert.Equal(t, 3, tr.MaxRight(0, atLeast(5)))
	assert.Equal(t, 5, tr.MaxRight(0, atLeast(14)))
	assert.Equal(t, 5, tr.MaxRight(0, atLeast(15)), "unsatisfiable predicate answers n")
	assert.Equal(t, 3, tr.MaxRight(2, atLeast(2)))
	assert.Equal(t, 5, tr.MaxRight(5, atLeast(1)), "empty tail answers n")
	assert.Panics(t, func() { tr.MaxRight(6, atLeast(0)) })
}

func TestTreeMinLeft(t *testing.T) {
	m := foldtree.Sum[int]()
	tr := FromSlice(m, []int{3, 1, 4, 1, 5})

	atLeast := func(k int) func(int) bool {
		return func(s int) bool { return s >= k }
	}

	assert.Equal(t, 5, tr.MinLeft(5, atLeast(0)), "pred true on identity answers r")
	assert.Equal(t, 4, tr.MinLeft(5, atLeast(1)))
	assert.Equal(t, 4, tr.MinLeft(5, atLeast(5)))
	assert.Equal(t, 3, tr.MinLeft(5, atLeast(6)))
	assert.Equal(t, 0, tr.MinLeft(5, atLeast(14)))
	assert.Equal(t, 0, tr.MinLeft(5, atLeast(15)), "unsatisfiable predicate answers 0")
	assert.Equal(t, 0, tr.MinLeft(0, atLeast(1)), "empty prefix answers 0")
	assert.Panics(t, func() { tr.MinLeft(-1, atLeast(0)) })
}

// searchCase drives one randomized monotonic-predicate search.
type searchCase struct {
	Values    []int
	Start     int
	Threshold int
}

func genSearchCase(maxN int) gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOf(gen.IntRange(0, 20)),
		gen.IntRange(0, maxN),
		gen.IntRange(0, 60),
	).Map(func(vs []interface{}) searchCase {
		values := vs[0].([]int)
		start := vs[1].(int)
		if start > len(values) {
			start = len(values)
		}
		return searchCase{Values: values, Start: start, Threshold: vs[2].(int)}
	})
}

// Non-negative values make "sum >= threshold" monotonic in fold width,
// which is the contract both searches require.
func TestTreeSearchMatchesBruteForce(t *testing.T) {
	m := foldtree.Sum[int]()

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("MaxRight matches a linear scan", prop.ForAll(
		func(c searchCase) bool {
			pred := func(s int) bool { return s >= c.Threshold }
			tr := FromSlice(m, c.Values)
			return tr.MaxRight(c.Start, pred) == bruteMaxRight(m, c.Values, c.Start, pred)
		}, genSearchCase(64)))
	properties.Property("MinLeft matches a linear scan", prop.ForAll(
		func(c searchCase) bool {
			pred := func(s int) bool { return s >= c.Threshold }
			tr := FromSlice(m, c.Values)
			return tr.MinLeft(c.Start, pred) == bruteMinLeft(m, c.Values, c.Start, pred)
		}, genSearchCase(64)))
	properties.TestingRun(t)
}

func TestLazyTreeSearchMatchesBruteForce(t *testing.T) {
	m := foldtree.WeightedSum[int]()

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	build := func(c searchCase) (*LazyTree[foldtree.Weighted[int], int], []foldtree.Weighted[int]) {
		tr := FromSliceLazy[foldtree.Weighted[int], int](
			m, foldtree.Add[int](), foldtree.WeightedSlice(c.Values))
		model := foldtree.WeightedSlice(c.Values)
		// A pending action over a prefix makes sure the searches push
		// correctly along their descent.
		if n := len(c.Values); n > 1 {
			tr.RangeApply(abstract.Span(0, n/2+1), 3)
			for i := 0; i <= n/2; i++ {
				model[i].Sum += 3
			}
		}
		return tr, model
	}

	properties.Property("MaxRight matches a linear scan", prop.ForAll(
		func(c searchCase) bool {
			pred := func(s foldtree.Weighted[int]) bool { return s.Sum >= c.Threshold }
			tr, model := build(c)
			return tr.MaxRight(c.Start, pred) == bruteMaxRight(m, model, c.Start, pred)
		}, genSearchCase(64)))
	properties.Property("MinLeft matches a linear scan", prop.ForAll(
		func(c searchCase) bool {
			pred := func(s foldtree.Weighted[int]) bool { return s.Sum >= c.Threshold }
			tr, model := build(c)
			return tr.MinLeft(c.Start, pred) == bruteMinLeft(m, model, c.Start, pred)
		}, genSearchCase(64)))
	properties.TestingRun(t)
}
