package ir

// AnyType holds values whose shape was inferred from their literal. A
// nil element stands for null.
type AnyType struct {
	value    PossibleArray[*Element]
	assigned bool
}

func NewAny() *AnyType {
	return &AnyType{}
}

func NewAnyArray() *AnyType {
	a := &AnyType{}
	a.MakeArray()
	return a
}

// AnyOf returns an assigned scalar any holding e.
func AnyOf(e *Element) *AnyType {
	a := &AnyType{}
	a.Add(e)
	return a
}

func (a *AnyType) IsArray() bool {
	return a.value.IsArray()
}

func (a *AnyType) MakeArray() {
	a.value.MakeArray()
}

func (a *AnyType) Value() *PossibleArray[*Element] {
	return &a.value
}

func (a *AnyType) Add(e *Element) {
	a.value.Add(e)
	a.assigned = true
}

func (a *AnyType) Assign() {
	a.assigned = true
}

func (a *AnyType) HasValue() bool {
	return a.assigned
}

func (a *AnyType) IsDefault() bool {
	return !a.assigned
}

// IsNull reports whether a holds the scalar null.
func (a *AnyType) IsNull() bool {
	return !a.IsArray() && a.value.Value() == nil
}

func (a *AnyType) Clone() *AnyType {
	return &AnyType{value: Map(&a.value, (*Element).Clone), assigned: a.assigned}
}

func (a *AnyType) Equal(b *AnyType) bool {
	return a.assigned == b.assigned && EqualFunc(&a.value, &b.value, Equal)
}
