// Package schemer formats Schemer schema documents.
//
// The language itself is implemented by the token, ir, parse and encode
// packages; this package composes them for tools which rewrite source
// files into their canonical form.
package schemer

import (
	"bytes"

	"github.com/signadot/schemer/encode"
	"github.com/signadot/schemer/format"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/libdiff"
	"github.com/signadot/schemer/parse"
)

type FormatConfig struct {
	Parse  []parse.ParseOption
	Encode []encode.EncodeOption
}

type FormatOpt func(*FormatConfig)

func FormatParseOpts(opts ...parse.ParseOption) FormatOpt {
	return func(c *FormatConfig) { c.Parse = append(c.Parse, opts...) }
}

func FormatEncodeOpts(opts ...encode.EncodeOption) FormatOpt {
	return func(c *FormatConfig) { c.Encode = append(c.Encode, opts...) }
}

// Format parses src as a module and returns its canonical Schemer text.
func Format(src []byte, opts ...FormatOpt) ([]byte, error) {
	cfg := &FormatConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	m, err := parse.ParseModule(src, "", cfg.Parse...)
	if err != nil {
		return nil, err
	}
	return FormatModule(m, cfg.Encode...)
}

// FormatModule renders m as Schemer text.
func FormatModule(m *ir.Module, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	opts = append(opts, encode.EncodeFormat(format.SchemerFormat))
	if err := encode.EncodeModule(m, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff returns a unified diff from src to its canonical text, or "" if
// src is already canonical.
func Diff(name string, src []byte, opts ...FormatOpt) (string, error) {
	res, err := Format(src, opts...)
	if err != nil {
		return "", err
	}
	return libdiff.Unified(name, name+" (formatted)", string(src), string(res), 3), nil
}

// IsCanonical reports whether re-parsing the canonical form of m yields
// a module equal to m.
func IsCanonical(m *ir.Module, opts ...encode.EncodeOption) (bool, error) {
	d, err := FormatModule(m, opts...)
	if err != nil {
		return false, err
	}
	n, err := parse.ParseModule(d, m.Name())
	if err != nil {
		return false, err
	}
	return ir.ModuleEqual(m, n), nil
}
