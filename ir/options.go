package ir

import "iter"

// Options is the ordered name to value mapping attached to a field by a
// parenthesized option list. The zero value is empty and ready to use.
type Options struct {
	o ordered[*Element]
}

func NewOptions() *Options {
	return &Options{}
}

// Set binds name to e. A repeated name replaces the earlier value but
// keeps its position.
func (o *Options) Set(name string, e *Element) {
	o.o.set(name, e)
}

// SetFlag binds name to boolean true, the value of an option written
// without one.
func (o *Options) SetFlag(name string) {
	o.Set(name, BooleanElement(BooleanOf(true)))
}

func (o *Options) Get(name string) (*Element, bool) {
	if o == nil {
		return nil, false
	}
	return o.o.get(name)
}

func (o *Options) Has(name string) bool {
	return o != nil && o.o.has(name)
}

// Bool reports whether option name is present and true.
func (o *Options) Bool(name string) bool {
	e, ok := o.Get(name)
	return ok && Truth(e)
}

// StringValue returns the value of a scalar string option.
func (o *Options) StringValue(name string) (string, bool) {
	e, ok := o.Get(name)
	if !ok || e.Kind != StringKind || e.String.IsArray() || !e.String.HasValue() {
		return "", false
	}
	return e.String.Value().Value(), true
}

func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return o.o.len()
}

func (o *Options) IsEmpty() bool {
	return o.Len() == 0
}

func (o *Options) Names() []string {
	if o == nil {
		return nil
	}
	return o.o.keys
}

// All iterates over options in declaration order.
func (o *Options) All() iter.Seq2[string, *Element] {
	if o == nil {
		return func(func(string, *Element) bool) {}
	}
	return o.o.all()
}

func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	return &Options{o: o.o.cloneWith((*Element).Clone)}
}

func optionsEqual(a, b *Options) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	return orderedEqual(&a.o, &b.o, Equal)
}
