package ir

import "iter"

// Fields is an insertion ordered set of field declarations keyed by
// name. The zero value is empty and ready to use.
type Fields struct {
	o ordered[*FieldType]
}

// Add adds f unless a field with the same name exists, in which case
// it returns false.
func (fs *Fields) Add(f *FieldType) bool {
	if fs.o.has(f.Name()) {
		return false
	}
	fs.o.set(f.Name(), f)
	return true
}

// Put adds or replaces f.
func (fs *Fields) Put(f *FieldType) {
	fs.o.set(f.Name(), f)
}

func (fs *Fields) Get(name string) (*FieldType, bool) {
	if fs == nil {
		return nil, false
	}
	return fs.o.get(name)
}

func (fs *Fields) Has(name string) bool {
	return fs != nil && fs.o.has(name)
}

func (fs *Fields) Len() int {
	if fs == nil {
		return 0
	}
	return fs.o.len()
}

func (fs *Fields) Names() []string {
	if fs == nil {
		return nil
	}
	return fs.o.keys
}

// All iterates over fields in declaration order.
func (fs *Fields) All() iter.Seq2[string, *FieldType] {
	if fs == nil {
		return func(func(string, *FieldType) bool) {}
	}
	return fs.o.all()
}

func (fs *Fields) Clone() Fields {
	return Fields{o: fs.o.cloneWith((*FieldType).Clone)}
}

func fieldsEqual(a, b *Fields) bool {
	return orderedEqual(&a.o, &b.o, FieldEqual)
}

// ObjectType is a nested schema: its field declarations together with
// the object values given for it. A nil value means absent.
type ObjectType struct {
	value    PossibleArray[*ObjectType]
	assigned bool
	fields   Fields
}

func NewObject() *ObjectType {
	return &ObjectType{}
}

func (o *ObjectType) IsArray() bool {
	return o.value.IsArray()
}

func (o *ObjectType) MakeArray() {
	o.value.MakeArray()
}

func (o *ObjectType) Value() *PossibleArray[*ObjectType] {
	return &o.value
}

// Add assigns v as the value, or appends it for arrays.
func (o *ObjectType) Add(v *ObjectType) {
	o.value.Add(v)
	o.assigned = true
}

// Assign marks o as holding a value without adding one.
func (o *ObjectType) Assign() {
	o.assigned = true
}

func (o *ObjectType) HasValue() bool {
	return o.assigned
}

func (o *ObjectType) IsDefault() bool {
	return !o.assigned
}

func (o *ObjectType) Fields() *Fields {
	return &o.fields
}

// Data returns the fields holding o's scalar value: those of the
// assigned object value, or o's own fields when it was inferred from a
// literal and so has no separate value.
func (o *ObjectType) Data() *Fields {
	if v := o.value.Value(); v != nil && !o.IsArray() {
		return v.Fields()
	}
	return &o.fields
}

func (o *ObjectType) Field(name string) (*FieldType, bool) {
	return o.fields.Get(name)
}

func (o *ObjectType) HasField(name string) bool {
	return o.fields.Has(name)
}

// AddField declares f, returning false if the name is taken.
func (o *ObjectType) AddField(f *FieldType) bool {
	return o.fields.Add(f)
}

// Instance returns a new object value pre-seeded with a copy of o's
// declarations, ready to be populated by a literal.
func (o *ObjectType) Instance() *ObjectType {
	return &ObjectType{fields: o.fields.Clone()}
}

// Template returns a copy of o's declarations and array-ness without
// any value.
func (o *ObjectType) Template() *ObjectType {
	res := o.Instance()
	if o.IsArray() {
		res.MakeArray()
	}
	return res
}

func (o *ObjectType) Clone() *ObjectType {
	if o == nil {
		return nil
	}
	return &ObjectType{
		value:    Map(&o.value, (*ObjectType).Clone),
		assigned: o.assigned,
		fields:   o.fields.Clone(),
	}
}

func (o *ObjectType) Equal(p *ObjectType) bool {
	if o == nil || p == nil {
		return o == p
	}
	return o.assigned == p.assigned &&
		fieldsEqual(&o.fields, &p.fields) &&
		EqualFunc(&o.value, &p.value, (*ObjectType).Equal)
}

// Values iterates over the populated object values: the scalar value if
// present, or each array element.
func (o *ObjectType) Values() iter.Seq[*ObjectType] {
	return func(yield func(*ObjectType) bool) {
		if !o.IsArray() {
			if v := o.value.Value(); v != nil {
				yield(v)
			}
			return
		}
		for _, v := range o.value.Values() {
			if v != nil && !yield(v) {
				return
			}
		}
	}
}
