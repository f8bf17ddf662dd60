package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/schemer/config"
	"github.com/signadot/schemer/encode"
	"github.com/signadot/schemer/format"
	"github.com/signadot/schemer/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='reject undeclared fields in object literals'"`
	Exact  bool `cli:"name=exact desc='convert floating literals exactly'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level, 0 for single line output'"`

	OutFormat *format.Format

	// File holds defaults from .schemer.toml or .schemer.yaml.
	File *config.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// applyFile copies defaults from the config file into cfg. It runs
// before flags are parsed so that flags win.
func (cfg *MainConfig) applyFile(c *config.Config) error {
	cfg.File = c
	if c.Indent != nil {
		cfg.Indent = *c.Indent
	}
	cfg.Strict = cfg.Strict || c.Strict
	cfg.Exact = cfg.Exact || c.Exact
	f, err := c.OutFormat()
	if err != nil {
		return err
	}
	if f != nil {
		cfg.OutFormat = f
	}
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Strict {
		res = append(res, parse.ParseStrict())
	}
	if cfg.Exact {
		res = append(res, parse.ParseExactFloats())
	}
	return res
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.SchemerFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if cfg.File != nil && cfg.File.Color != nil {
		if *cfg.File.Color {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Diff  bool `cli:"name=d desc='print a diff instead of the formatted text'"`
	Write bool `cli:"name=w desc='write the result to the source file'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report errors'"`

	Check *cli.Command
}
