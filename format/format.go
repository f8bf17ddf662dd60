package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	SchemerFormat Format = iota
	JSONFormat
	JSONSchemaFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":          SchemerFormat,
		"schemer":    SchemerFormat,
		"j":          JSONFormat,
		"json":       JSONFormat,
		"js":         JSONSchemaFormat,
		"jsonschema": JSONSchemaFormat,
		"y":          YAMLFormat,
		"yaml":       YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SchemerFormat:
		return []byte("schemer"), nil
	case JSONFormat:
		return []byte("json"), nil
	case JSONSchemaFormat:
		return []byte("jsonschema"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsSchemer() bool { return f == SchemerFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }

// IsJSON reports whether f renders as JSON, either values or JSON
// Schema.
func (f Format) IsJSON() bool { return f == JSONFormat || f == JSONSchemaFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SchemerFormat:
		return ".schemer"
	case JSONFormat:
		return ".json"
	case JSONSchemaFormat:
		return ".schema.json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SchemerFormat, JSONFormat, JSONSchemaFormat, YAMLFormat}
}
