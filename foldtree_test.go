package foldtree

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/foldtree/foldtree/abstract"
)

func testParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return params
}

// combinerLaws checks the monoid laws: two-sided identity and
// associativity, for randomized elements.
func combinerLaws[S comparable](t *testing.T, m abstract.Combiner[S], g gopter.Gen) {
	t.Helper()
	properties := gopter.NewProperties(testParameters())
	properties.Property("identity is a left unit", prop.ForAll(
		func(x S) bool {
			return m.Combine(m.Identity(), x) == x
		}, g))
	properties.Property("identity is a right unit", prop.ForAll(
		func(x S) bool {
			return m.Combine(x, m.Identity()) == x
		}, g))
	properties.Property("combine is associative", prop.ForAll(
		func(x, y, z S) bool {
			return m.Combine(m.Combine(x, y), z) == m.Combine(x, m.Combine(y, z))
		}, g, g, g))
	properties.TestingRun(t)
}

// actionLaws checks the action laws: the identity action is a no-op, and
// composing then acting equals acting with g first and f second.
func actionLaws[S, F comparable](t *testing.T, a abstract.Action[S, F], gs, gf gopter.Gen) {
	t.Helper()
	properties := gopter.NewProperties(testParameters())
	properties.Property("identity action is a no-op", prop.ForAll(
		func(s S) bool {
			return a.Act(a.Identity(), s) == s
		}, gs))
	properties.Property("compose then act equals act with g then f", prop.ForAll(
		func(f, g F, s S) bool {
			return a.Act(a.Compose(f, g), s) == a.Act(f, a.Act(g, s))
		}, gf, gf, gs))
	properties.TestingRun(t)
}

func genWeighted() gopter.Gen {
	return gen.Struct(reflect.TypeOf(Weighted[int]{}), map[string]gopter.Gen{
		"Sum": gen.Int(),
		"Len": gen.IntRange(0, 1024),
	})
}

func TestSumLaws(t *testing.T) {
	combinerLaws[int](t, Sum[int](), gen.Int())
}

func TestSumInverterLaws(t *testing.T) {
	m := SumInverter[int]()
	combinerLaws[int](t, m, gen.Int())

	properties := gopter.NewProperties(testParameters())
	properties.Property("invert is a two-sided inverse", prop.ForAll(
		func(x int) bool {
			return m.Combine(x, m.Invert(x)) == m.Identity() &&
				m.Combine(m.Invert(x), x) == m.Identity()
		}, gen.Int()))
	properties.TestingRun(t)
}

func TestMinLaws(t *testing.T) {
	combinerLaws[int](t, Min(math.MaxInt), gen.Int())
}

func TestMaxLaws(t *testing.T) {
	combinerLaws[int](t, Max(math.MinInt), gen.Int())
}

func TestWeightedSumLaws(t *testing.T) {
	combinerLaws[Weighted[int]](t, WeightedSum[int](), genWeighted())
}

func TestLexicographicPairLaws(t *testing.T) {
	type pair struct{ a, b int }
	lexMin := abstract.CombinerFunc(pair{math.MaxInt, math.MaxInt}, func(x, y pair) pair {
		if x.a != y.a {
			if x.a < y.a {
				return x
			}
			return y
		}
		if x.b <= y.b {
			return x
		}
		return y
	})
	g := gopter.CombineGens(gen.Int(), gen.Int()).Map(func(vs []interface{}) pair {
		return pair{a: vs[0].(int), b: vs[1].(int)}
	})
	combinerLaws[pair](t, lexMin, g)
}

func TestAddLaws(t *testing.T) {
	actionLaws[Weighted[int], int](t, Add[int](), genWeighted(), gen.Int())
}

func TestAddToLaws(t *testing.T) {
	actionLaws[int, int](t, AddTo[int](), gen.Int(), gen.Int())
}

func TestAssignLaws(t *testing.T) {
	ga := gopter.CombineGens(gen.Int(), gen.Bool()).Map(func(vs []interface{}) Update[int] {
		if !vs[1].(bool) {
			return Update[int]{}
		}
		return UpdateTo(vs[0].(int))
	})
	actionLaws[int, Update[int]](t, Assign[int](), gen.Int(), ga)
}

func TestAssignComposeKeepsNewest(t *testing.T) {
	a := Assign[int]()
	if got := a.Compose(UpdateTo(7), UpdateTo(3)); got != UpdateTo(7) {
		t.Fatalf("expected newest assignment to win, got %+v", got)
	}
	if got := a.Compose(Update[int]{}, UpdateTo(3)); got != UpdateTo(3) {
		t.Fatalf("expected older assignment to survive identity, got %+v", got)
	}
}
