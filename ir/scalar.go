package ir

// Scalar is the value holder shared by the primitive types: a
// [PossibleArray] of values, whether a value was ever assigned and an
// optional enum.
type Scalar[T comparable] struct {
	value    PossibleArray[T]
	assigned bool
	enum     *Enum[T]
}

func (s *Scalar[T]) IsArray() bool {
	return s.value.IsArray()
}

func (s *Scalar[T]) MakeArray() {
	s.value.MakeArray()
}

func (s *Scalar[T]) Value() *PossibleArray[T] {
	return &s.value
}

// Add assigns v, or appends it if s is an array.
func (s *Scalar[T]) Add(v T) {
	s.value.Add(v)
	s.assigned = true
}

// Assign marks s as holding a value. It is used for empty array
// literals, which add nothing.
func (s *Scalar[T]) Assign() {
	s.assigned = true
}

// HasValue reports whether a literal was ever assigned.
func (s *Scalar[T]) HasValue() bool {
	return s.assigned
}

// IsDefault reports whether s was declared without a value.
func (s *Scalar[T]) IsDefault() bool {
	return !s.assigned
}

func (s *Scalar[T]) Enum() *Enum[T] {
	return s.enum
}

// AddEnum adds v to the enum, creating it if needed. It returns false
// if v was already a member.
func (s *Scalar[T]) AddEnum(v T) bool {
	if s.enum == nil {
		s.enum = &Enum[T]{}
	}
	return s.enum.TryAdd(v)
}

// CheckEnum reports whether v is allowed by the enum, if any.
func (s *Scalar[T]) CheckEnum(v T) bool {
	return s.enum == nil || s.enum.Contains(v)
}

// template returns a copy of s without values.
func (s *Scalar[T]) template() Scalar[T] {
	res := Scalar[T]{enum: s.enum.Clone()}
	if s.IsArray() {
		res.MakeArray()
	}
	return res
}

func (s *Scalar[T]) clone() Scalar[T] {
	return Scalar[T]{value: s.value.Clone(), assigned: s.assigned, enum: s.enum.Clone()}
}

func (s *Scalar[T]) equal(o *Scalar[T]) bool {
	return s.assigned == o.assigned &&
		enumEqual(s.enum, o.enum) &&
		EqualFunc(&s.value, &o.value, func(a, b T) bool { return a == b })
}

type StringType struct {
	Scalar[string]
}

func NewString() *StringType {
	return &StringType{}
}

// StringOf returns an assigned scalar string.
func StringOf(v string) *StringType {
	s := &StringType{}
	s.Add(v)
	return s
}

func (s *StringType) Template() *StringType {
	return &StringType{Scalar: s.Scalar.template()}
}

func (s *StringType) Clone() *StringType {
	return &StringType{Scalar: s.Scalar.clone()}
}

func (s *StringType) Equal(o *StringType) bool {
	return s.Scalar.equal(&o.Scalar)
}

type BooleanType struct {
	Scalar[bool]
}

func NewBoolean() *BooleanType {
	return &BooleanType{}
}

// BooleanOf returns an assigned scalar boolean.
func BooleanOf(v bool) *BooleanType {
	b := &BooleanType{}
	b.Add(v)
	return b
}

func (b *BooleanType) Template() *BooleanType {
	return &BooleanType{Scalar: b.Scalar.template()}
}

func (b *BooleanType) Clone() *BooleanType {
	return &BooleanType{Scalar: b.Scalar.clone()}
}

func (b *BooleanType) Equal(o *BooleanType) bool {
	return b.Scalar.equal(&o.Scalar)
}

// NumberType is a numeric scalar with an optional interval.
type NumberType[T Numeric] struct {
	Scalar[T]
	interval Interval[T]
}

type (
	IntegerType  = NumberType[int64]
	FloatingType = NumberType[float64]
)

func NewInteger() *IntegerType {
	return &IntegerType{}
}

func NewFloating() *FloatingType {
	return &FloatingType{}
}

// IntegerOf returns an assigned scalar integer.
func IntegerOf(v int64) *IntegerType {
	n := &IntegerType{}
	n.Add(v)
	return n
}

// FloatingOf returns an assigned scalar floating.
func FloatingOf(v float64) *FloatingType {
	n := &FloatingType{}
	n.Add(v)
	return n
}

func (n *NumberType[T]) Interval() *Interval[T] {
	return &n.interval
}

// CheckInterval reports whether v lies within the interval.
func (n *NumberType[T]) CheckInterval(v T) bool {
	return n.interval.Contains(v)
}

// Template returns a copy of n with its constraints but no values.
func (n *NumberType[T]) Template() *NumberType[T] {
	return &NumberType[T]{Scalar: n.Scalar.template(), interval: n.interval}
}

func (n *NumberType[T]) Clone() *NumberType[T] {
	return &NumberType[T]{Scalar: n.Scalar.clone(), interval: n.interval}
}

func (n *NumberType[T]) Equal(o *NumberType[T]) bool {
	return n.interval.Equal(o.interval) && n.Scalar.equal(&o.Scalar)
}
