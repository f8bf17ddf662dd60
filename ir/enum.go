package ir

import "slices"

// Enum is an insertion ordered list of allowed values. Schemas are
// small so membership is a linear scan.
type Enum[T comparable] struct {
	values []T
}

// TryAdd appends v unless it is already present, in which case it
// returns false.
func (e *Enum[T]) TryAdd(v T) bool {
	if e.Contains(v) {
		return false
	}
	e.values = append(e.values, v)
	return true
}

// Contains, Values and Len treat a nil enum, as held by a scalar
// declared without one, as empty.
func (e *Enum[T]) Contains(v T) bool {
	if e == nil {
		return false
	}
	return slices.Contains(e.values, v)
}

func (e *Enum[T]) Values() []T {
	if e == nil {
		return nil
	}
	return e.values
}

func (e *Enum[T]) Len() int {
	if e == nil {
		return 0
	}
	return len(e.values)
}

func (e *Enum[T]) Clone() *Enum[T] {
	if e == nil {
		return nil
	}
	return &Enum[T]{values: slices.Clone(e.values)}
}

func enumEqual[T comparable](a, b *Enum[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.values, b.values)
}
