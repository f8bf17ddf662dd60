package ir

import "fmt"

// Kind tags the variant held by an [Element].
type Kind int

const (
	NoneKind Kind = iota
	StringKind
	IntegerKind
	FloatingKind
	BooleanKind
	ObjectKind
	AnyKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NoneKind:     "none",
		StringKind:   "string",
		IntegerKind:  "integer",
		FloatingKind: "floating",
		BooleanKind:  "boolean",
		ObjectKind:   "object",
		AnyKind:      "any",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"none":     NoneKind,
		"string":   StringKind,
		"integer":  IntegerKind,
		"floating": FloatingKind,
		"boolean":  BooleanKind,
		"object":   ObjectKind,
		"any":      AnyKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		StringKind,
		IntegerKind,
		FloatingKind,
		BooleanKind,
		ObjectKind,
		AnyKind,
	}
}

// IsLeaf reports whether elements of kind k never contain other
// elements.
func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, AnyKind:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether k carries an interval.
func (k Kind) IsNumeric() bool {
	return k == IntegerKind || k == FloatingKind
}
