package ir

// Equal reports whether two elements are structurally equal: same kind,
// array-ness, constraints, assignment and values. Fields and options
// compare in declaration order.
func Equal(a, b *Element) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case StringKind:
		return a.String.Equal(b.String)
	case IntegerKind:
		return a.Integer.Equal(b.Integer)
	case FloatingKind:
		return a.Floating.Equal(b.Floating)
	case BooleanKind:
		return a.Boolean.Equal(b.Boolean)
	case ObjectKind:
		return a.Object.Equal(b.Object)
	case AnyKind:
		return a.Any.Equal(b.Any)
	}
	return true
}

// FieldEqual reports whether two fields have the same name, options and
// element.
func FieldEqual(a, b *FieldType) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.name == b.name &&
		optionsEqual(a.options, b.options) &&
		Equal(a.value, b.value)
}
