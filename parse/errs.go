package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/schemer/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// UnexpectedTokenError reports a token which does not fit the grammar at
// its position.
type UnexpectedTokenError struct {
	Expected string
	Found    token.Token
	Pos      token.Pos
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected '%s' at %s, expected '%s'", e.Found.String(), e.Pos, e.Expected)
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrParse
}

type ConstraintKind int

const (
	// EnumConstraint: a value is not a member of its enum.
	EnumConstraint ConstraintKind = iota
	// IntervalConstraint: a value lies outside its interval.
	IntervalConstraint
	// DuplicateEnumConstraint: an enum lists a member twice.
	DuplicateEnumConstraint
	// EmptyIntervalConstraint: an interval minimum exceeds its maximum.
	EmptyIntervalConstraint
	// LiteralConstraint: a literal cannot be converted to its type.
	LiteralConstraint
)

func (k ConstraintKind) String() string {
	switch k {
	case EnumConstraint:
		return "enum"
	case IntervalConstraint:
		return "interval"
	case DuplicateEnumConstraint:
		return "duplicate enum member"
	case EmptyIntervalConstraint:
		return "empty interval"
	case LiteralConstraint:
		return "literal"
	}
	return fmt.Sprintf("ConstraintKind(%d)", int(k))
}

// ConstraintError reports a value rejected by an enum or interval, or a
// malformed constraint.
type ConstraintError struct {
	Kind  ConstraintKind
	Value string
	Pos   token.Pos
}

func (e *ConstraintError) Error() string {
	switch e.Kind {
	case EnumConstraint, IntervalConstraint:
		return fmt.Sprintf("value %s is not allowed by %s at %s", e.Value, e.Kind, e.Pos)
	}
	return fmt.Sprintf("%s %s at %s", e.Kind, e.Value, e.Pos)
}

func (e *ConstraintError) Unwrap() error {
	return ErrParse
}

// DuplicateFieldError reports a field name used twice in one object.
type DuplicateFieldError struct {
	Name string
	Pos  token.Pos
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field %q is already defined, at %s", e.Name, e.Pos)
}

func (e *DuplicateFieldError) Unwrap() error {
	return ErrParse
}

// UnresolvedFieldError reports an object literal field which is not
// declared by the object's schema and whose type cannot be inferred.
type UnresolvedFieldError struct {
	Name string
	Pos  token.Pos
}

func (e *UnresolvedFieldError) Error() string {
	return fmt.Sprintf("field %q is not declared at %s", e.Name, e.Pos)
}

func (e *UnresolvedFieldError) Unwrap() error {
	return ErrParse
}

// Position returns the source position of a lexing or parsing error.
func Position(err error) (token.Pos, bool) {
	var (
		te *token.TokenizeErr
		ue *UnexpectedTokenError
		ce *ConstraintError
		de *DuplicateFieldError
		re *UnresolvedFieldError
	)
	switch {
	case errors.As(err, &te):
		return te.Pos, true
	case errors.As(err, &ue):
		return ue.Pos, true
	case errors.As(err, &ce):
		return ce.Pos, true
	case errors.As(err, &de):
		return de.Pos, true
	case errors.As(err, &re):
		return re.Pos, true
	}
	return token.Pos{}, false
}
