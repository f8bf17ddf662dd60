// Package ir provides the in-memory representation of parsed Schemer
// schemas.
//
// # Overview
//
// A schema is a tree of [FieldType]s. Each field has a name, an
// [Options] bag and an [Element], which is both the field's type and
// any literal value given for it. Objects nest further fields; there
// are no references between fields, so the tree is strictly owned.
//
// # Elements
//
// [Element] is a tagged union selected by its Kind:
//
//   - StringKind, IntegerKind, FloatingKind, BooleanKind: scalar types
//     built on [Scalar], each holding a [PossibleArray] of values and an
//     optional [Enum]. Numeric types also carry an [Interval].
//   - ObjectKind: an [ObjectType], whose field declarations describe the
//     schema and whose values are populated object instances.
//   - AnyKind: an [AnyType] holding elements whose kind was inferred
//     from their literal. A nil element is null.
//
// Whether a value was ever given is tracked explicitly, so a declared
// field and a field assigned the zero value are distinct (see
// [Scalar.HasValue]).
//
// # Paths
//
// Elements, fields and modules support lookup by dotted path, for
// example
//
//	e, err := field.Lookup("address.lines[0]")
//
// Lookup looks through any values and prefers populated object values
// over declarations.
//
// Trees are built by the parser and are not modified afterwards; the
// Template, Instance and Clone methods exist for the parser's use in
// building independent copies.
package ir
