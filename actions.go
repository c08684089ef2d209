package foldtree

import "github.com/foldtree/foldtree/abstract"

type addAction[T Number] struct{}

func (addAction[T]) Identity() T {
	var zero T
	return zero
}

func (addAction[T]) Compose(f, g T) T { return f + g }
func (addAction[T]) Act(f T, s Weighted[T]) Weighted[T] {
	return Weighted[T]{Sum: s.Sum + f*T(s.Len), Len: s.Len}
}

// Add returns the action that adds a constant to every element of a
// Weighted segment: the segment sum grows by the constant times the
// segment width.
func Add[T Number]() abstract.Action[Weighted[T], T] { return addAction[T]{} }

type addToAction[T Number] struct{}

func (addToAction[T]) Identity() T {
	var zero T
	return zero
}

func (addToAction[T]) Compose(f, g T) T { return f + g }
func (addToAction[T]) Act(f T, s T) T   { return s + f }

// AddTo returns the action that adds a constant to every element of a
// segment aggregated by Min or Max, where shifting every element shifts
// the aggregate by the same amount.
func AddTo[T Number]() abstract.Action[T, T] { return addToAction[T]{} }

// Update is an optional replacement value. The zero value is the
// identity action and leaves elements unchanged.
type Update[T any] struct {
	Value T
	Valid bool
}

// UpdateTo returns the action value that overwrites with v.
func UpdateTo[T any](v T) Update[T] { return Update[T]{Value: v, Valid: true} }

type assignAction[T any] struct{}

func (assignAction[T]) Identity() Update[T] { return Update[T]{} }

// Compose keeps the newer assignment: an overwrite composed in front of
// any older action wins.
func (assignAction[T]) Compose(f, g Update[T]) Update[T] {
	if f.Valid {
		return f
	}
	return g
}

func (assignAction[T]) Act(f Update[T], s T) T {
	if f.Valid {
		return f.Value
	}
	return s
}

// Assign returns the action that overwrites every element of a segment
// with one value, for aggregates like Min or Max that collapse a
// constant segment to the constant itself.
func Assign[T any]() abstract.Action[T, Update[T]] { return assignAction[T]{} }
