package ir

// Element is the value and type carrier of a field. It is a tagged
// union: Kind selects which of the pointer fields is set.
type Element struct {
	Kind Kind

	String   *StringType
	Integer  *IntegerType
	Floating *FloatingType
	Boolean  *BooleanType
	Object   *ObjectType
	Any      *AnyType
}

func StringElement(v *StringType) *Element {
	return &Element{Kind: StringKind, String: v}
}

func IntegerElement(v *IntegerType) *Element {
	return &Element{Kind: IntegerKind, Integer: v}
}

func FloatingElement(v *FloatingType) *Element {
	return &Element{Kind: FloatingKind, Floating: v}
}

func BooleanElement(v *BooleanType) *Element {
	return &Element{Kind: BooleanKind, Boolean: v}
}

func ObjectElement(v *ObjectType) *Element {
	return &Element{Kind: ObjectKind, Object: v}
}

func AnyElement(v *AnyType) *Element {
	return &Element{Kind: AnyKind, Any: v}
}

// IsNone reports whether e is nil or carries no variant.
func (e *Element) IsNone() bool {
	return e == nil || e.Kind == NoneKind
}

// IsArray reports whether the element holds an array of values.
func (e *Element) IsArray() bool {
	switch e.Kind {
	case StringKind:
		return e.String.IsArray()
	case IntegerKind:
		return e.Integer.IsArray()
	case FloatingKind:
		return e.Floating.IsArray()
	case BooleanKind:
		return e.Boolean.IsArray()
	case ObjectKind:
		return e.Object.IsArray()
	case AnyKind:
		return e.Any.IsArray()
	}
	return false
}

// HasValue reports whether a literal value was assigned to e.
func (e *Element) HasValue() bool {
	switch e.Kind {
	case StringKind:
		return e.String.HasValue()
	case IntegerKind:
		return e.Integer.HasValue()
	case FloatingKind:
		return e.Floating.HasValue()
	case BooleanKind:
		return e.Boolean.HasValue()
	case ObjectKind:
		return e.Object.HasValue()
	case AnyKind:
		return e.Any.HasValue()
	}
	return false
}

// TypeString describes the declared type of e, such as "integer[]".
func (e *Element) TypeString() string {
	if e.IsNone() {
		return NoneKind.String()
	}
	if e.IsArray() && e.Kind != AnyKind {
		return e.Kind.String() + "[]"
	}
	return e.Kind.String()
}

// Template returns a copy of e with its declarations and constraints but
// none of its values.
func (e *Element) Template() *Element {
	switch e.Kind {
	case StringKind:
		return StringElement(e.String.Template())
	case IntegerKind:
		return IntegerElement(e.Integer.Template())
	case FloatingKind:
		return FloatingElement(e.Floating.Template())
	case BooleanKind:
		return BooleanElement(e.Boolean.Template())
	case ObjectKind:
		return ObjectElement(e.Object.Template())
	case AnyKind:
		return AnyElement(NewAny())
	}
	return &Element{}
}

func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case StringKind:
		return StringElement(e.String.Clone())
	case IntegerKind:
		return IntegerElement(e.Integer.Clone())
	case FloatingKind:
		return FloatingElement(e.Floating.Clone())
	case BooleanKind:
		return BooleanElement(e.Boolean.Clone())
	case ObjectKind:
		return ObjectElement(e.Object.Clone())
	case AnyKind:
		return AnyElement(e.Any.Clone())
	}
	return &Element{}
}

// Truth reports whether e holds a value which reads as true: a true
// boolean, a non-zero number, a non-empty string, array or object.
func Truth(e *Element) bool {
	if e.IsNone() || !e.HasValue() {
		return false
	}
	if e.IsArray() {
		switch e.Kind {
		case StringKind:
			return len(e.String.Value().Values()) != 0
		case IntegerKind:
			return len(e.Integer.Value().Values()) != 0
		case FloatingKind:
			return len(e.Floating.Value().Values()) != 0
		case BooleanKind:
			return len(e.Boolean.Value().Values()) != 0
		case ObjectKind:
			return len(e.Object.Value().Values()) != 0
		case AnyKind:
			return len(e.Any.Value().Values()) != 0
		}
	}
	switch e.Kind {
	case StringKind:
		return e.String.Value().Value() != ""
	case IntegerKind:
		return e.Integer.Value().Value() != 0
	case FloatingKind:
		return e.Floating.Value().Value() != 0
	case BooleanKind:
		return e.Boolean.Value().Value()
	case ObjectKind:
		return e.Object.Data().Len() != 0
	case AnyKind:
		return Truth(e.Any.Value().Value())
	}
	return false
}
