package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/schemer"
	"github.com/signadot/schemer/encode"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	fOpts := []schemer.FormatOpt{
		schemer.FormatParseOpts(cfg.parseOpts()...),
		schemer.FormatEncodeOpts(encode.Indent(cfg.Indent)),
	}
	differs := false
	for _, in := range ins {
		if cfg.Diff {
			d, err := schemer.Diff(in.name, in.data, fOpts...)
			if err != nil {
				return fmt.Errorf("error formatting %s: %w", in.name, err)
			}
			if d == "" {
				continue
			}
			differs = true
			if _, err := io.WriteString(cc.Out, d); err != nil {
				return err
			}
			continue
		}
		res, err := schemer.Format(in.data, fOpts...)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", in.name, err)
		}
		if cfg.Write {
			if string(res) == string(in.data) {
				continue
			}
			if err := os.WriteFile(in.name, res, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", in.name, err)
			}
			continue
		}
		if _, err := cc.Out.Write(res); err != nil {
			return err
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
