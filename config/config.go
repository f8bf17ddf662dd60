// Package config loads project defaults for the schemer command from a
// .schemer.toml or .schemer.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/signadot/schemer/debug"
	"github.com/signadot/schemer/format"
	"gopkg.in/yaml.v3"
)

const (
	TOMLFile = ".schemer.toml"
	YAMLFile = ".schemer.yaml"
)

var ErrBadConfig = errors.New("bad config")

// Config holds defaults which command line flags override. Unset
// pointer fields leave the command's own default in place.
type Config struct {
	Indent *int   `toml:"indent" yaml:"indent"`
	Format string `toml:"format" yaml:"format"`
	Color  *bool  `toml:"color" yaml:"color"`
	Strict bool   `toml:"strict" yaml:"strict"`
	Exact  bool   `toml:"exact" yaml:"exact"`

	// Path is the file the config was read from, empty when none was
	// found.
	Path string `toml:"-" yaml:"-"`
}

// Load looks for a config file in dir and then in each parent
// directory. The TOML file wins when both exist in one directory. If
// none is found Load returns an empty config.
func Load(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		for _, name := range []string{TOMLFile, YAMLFile} {
			path := filepath.Join(dir, name)
			d, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			return Decode(path, d)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return &Config{}, nil
		}
		dir = parent
	}
}

// Decode decodes d, choosing TOML or YAML from the suffix of path.
// Unknown keys are an error.
func Decode(path string, d []byte) (*Config, error) {
	c := &Config{Path: path}
	switch {
	case strings.HasSuffix(path, ".toml"):
		md, err := toml.Decode(string(d), c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadConfig, path, err)
		}
		if keys := md.Undecoded(); len(keys) != 0 {
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrBadConfig, path, keys[0].String())
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		dec := yaml.NewDecoder(bytes.NewReader(d))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadConfig, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s: unknown file type", ErrBadConfig, path)
	}
	if c.Indent != nil && *c.Indent < 0 {
		return nil, fmt.Errorf("%w: %s: negative indent %d", ErrBadConfig, path, *c.Indent)
	}
	if _, err := c.OutFormat(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadConfig, path, err)
	}
	if debug.Config() {
		debug.Logf("config from %s: %v\n", path, c)
	}
	return c, nil
}

// OutFormat returns the configured output format, nil if none.
func (c *Config) OutFormat() (*format.Format, error) {
	if c.Format == "" {
		return nil, nil
	}
	f, err := format.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Config) String() string {
	parts := []string{}
	if c.Indent != nil {
		parts = append(parts, fmt.Sprintf("indent=%d", *c.Indent))
	}
	if c.Format != "" {
		parts = append(parts, "format="+c.Format)
	}
	if c.Color != nil {
		parts = append(parts, fmt.Sprintf("color=%t", *c.Color))
	}
	if c.Strict {
		parts = append(parts, "strict")
	}
	if c.Exact {
		parts = append(parts, "exact")
	}
	return "{" + strings.Join(parts, " ") + "}"
}
