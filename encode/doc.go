// Package encode renders parsed schemas.
//
// The Schemer format writes declarations back as Schemer text which
// parses to an equal schema. The JSON and YAML formats write the
// instance a schema describes, made of its defaults and zero values. The
// JSON Schema format writes a draft 2020-12 schema document.
//
// # Usage
//
//	f, err := parse.ParseString(`person: object { name: string }`)
//	...
//	err = encode.Encode(f, os.Stdout, encode.Indent(4))
//
//	// JSON Schema
//	err = encode.Encode(f, os.Stdout, encode.EncodeFormat(format.JSONSchemaFormat))
//
// # Related Packages
//
//   - github.com/signadot/schemer/ir - the schema model
//   - github.com/signadot/schemer/parse - parse Schemer text
package encode
