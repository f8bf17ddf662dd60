// Package parse parses Schemer schema text into [ir] trees.
//
// # Usage
//
//	// Parse a single field
//	f, err := parse.Parse([]byte(`age: integer 0..150 = 30`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse several top level fields into a module
//	m, err := parse.ParseModule(data, "people")
//
//	// Record field positions
//	pos := map[*ir.FieldType]token.Pos{}
//	f, err := parse.Parse(data, parse.ParsePositions(pos))
//
// Values are validated while parsing: enum and interval violations,
// duplicate fields and literals of the wrong shape abort the parse with
// an error wrapping [ErrParse]. Lexical errors are returned as
// [*token.TokenizeErr].
//
// Values of any fields, option arguments and object literal fields not
// declared by their object are parsed without a schema, their kind
// being inferred from the literal.
//
// # Related Packages
//
//   - github.com/signadot/schemer/ir - schema representation
//   - github.com/signadot/schemer/encode - render schemas as text
//   - github.com/signadot/schemer/token - tokenization
package parse
