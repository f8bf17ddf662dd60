package ir

import "slices"

// PossibleArray holds either a single value or an ordered, possibly
// empty, array of values. The zero value is a scalar holding the zero
// T.
type PossibleArray[T any] struct {
	array  bool
	value  T
	values []T
}

func ScalarOf[T any](v T) PossibleArray[T] {
	return PossibleArray[T]{value: v}
}

func ArrayOf[T any](vs ...T) PossibleArray[T] {
	return PossibleArray[T]{array: true, values: vs}
}

func (p *PossibleArray[T]) IsArray() bool {
	return p.array
}

// MakeArray turns p into an empty array.
func (p *PossibleArray[T]) MakeArray() {
	var zero T
	p.array = true
	p.value = zero
	p.values = nil
}

// Add sets the scalar value, or appends to the array.
func (p *PossibleArray[T]) Add(v T) {
	if p.array {
		p.values = append(p.values, v)
		return
	}
	p.value = v
}

// Value returns the scalar value, or the zero T for arrays.
func (p *PossibleArray[T]) Value() T {
	return p.value
}

// Values returns the array elements, or nil for scalars.
func (p *PossibleArray[T]) Values() []T {
	return p.values
}

// Len returns the number of values held: 1 for a scalar.
func (p *PossibleArray[T]) Len() int {
	if p.array {
		return len(p.values)
	}
	return 1
}

// At returns the i'th array element.
func (p *PossibleArray[T]) At(i int) (T, bool) {
	var zero T
	if !p.array || i < 0 || i >= len(p.values) {
		return zero, false
	}
	return p.values[i], true
}

// Map returns a copy of p with f applied to each value.
func Map[T, U any](p *PossibleArray[T], f func(T) U) PossibleArray[U] {
	if !p.array {
		return PossibleArray[U]{value: f(p.value)}
	}
	res := PossibleArray[U]{array: true, values: make([]U, 0, len(p.values))}
	for _, v := range p.values {
		res.values = append(res.values, f(v))
	}
	return res
}

func (p *PossibleArray[T]) Clone() PossibleArray[T] {
	return PossibleArray[T]{array: p.array, value: p.value, values: slices.Clone(p.values)}
}

// EqualFunc compares two containers with eq.
func EqualFunc[T any](a, b *PossibleArray[T], eq func(T, T) bool) bool {
	if a.array != b.array {
		return false
	}
	if !a.array {
		return eq(a.value, b.value)
	}
	return slices.EqualFunc(a.values, b.values, eq)
}
