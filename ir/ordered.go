package ir

import (
	"iter"
	"slices"
)

// ordered is a string keyed map which remembers insertion order.
type ordered[V any] struct {
	keys []string
	m    map[string]V
}

func (o *ordered[V]) set(k string, v V) (replaced bool) {
	if o.m == nil {
		o.m = make(map[string]V)
	}
	if _, replaced = o.m[k]; !replaced {
		o.keys = append(o.keys, k)
	}
	o.m[k] = v
	return replaced
}

func (o *ordered[V]) get(k string) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

func (o *ordered[V]) has(k string) bool {
	_, ok := o.m[k]
	return ok
}

func (o *ordered[V]) len() int {
	return len(o.keys)
}

func (o *ordered[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.m[k]) {
				return
			}
		}
	}
}

func (o *ordered[V]) cloneWith(f func(V) V) ordered[V] {
	res := ordered[V]{keys: slices.Clone(o.keys)}
	if o.m != nil {
		res.m = make(map[string]V, len(o.m))
		for k, v := range o.m {
			res.m[k] = f(v)
		}
	}
	return res
}

func orderedEqual[V any](a, b *ordered[V], eq func(V, V) bool) bool {
	if !slices.Equal(a.keys, b.keys) {
		return false
	}
	for _, k := range a.keys {
		if !eq(a.m[k], b.m[k]) {
			return false
		}
	}
	return true
}
