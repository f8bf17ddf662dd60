package ir

// Numeric is the set of types which may carry an [Interval].
type Numeric interface {
	~int64 | ~float64
}

// Interval is an inclusive range with optional bounds. The zero value
// is unbounded.
type Interval[T Numeric] struct {
	min, max       T
	hasMin, hasMax bool
}

func (i *Interval[T]) SetMin(v T) {
	i.min, i.hasMin = v, true
}

func (i *Interval[T]) SetMax(v T) {
	i.max, i.hasMax = v, true
}

func (i *Interval[T]) Min() (T, bool) {
	return i.min, i.hasMin
}

func (i *Interval[T]) Max() (T, bool) {
	return i.max, i.hasMax
}

// IsBounded reports whether either bound is present.
func (i *Interval[T]) IsBounded() bool {
	return i.hasMin || i.hasMax
}

// IsEmpty reports whether no value satisfies the interval.
func (i *Interval[T]) IsEmpty() bool {
	return i.hasMin && i.hasMax && i.min > i.max
}

// Contains reports whether min <= v <= max, absent bounds accepting
// anything.
func (i *Interval[T]) Contains(v T) bool {
	if i.hasMin && v < i.min {
		return false
	}
	if i.hasMax && v > i.max {
		return false
	}
	return true
}

func (i Interval[T]) Equal(o Interval[T]) bool {
	return i.hasMin == o.hasMin && i.hasMax == o.hasMax &&
		(!i.hasMin || i.min == o.min) &&
		(!i.hasMax || i.max == o.max)
}
