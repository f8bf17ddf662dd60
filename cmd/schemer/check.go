package main

import (
	"fmt"
	"os"

	"github.com/signadot/schemer"
	"github.com/signadot/schemer/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, in := range ins {
		m, err := parse.ParseModule(in.data, moduleName(in.name), cfg.parseOpts()...)
		if err == nil {
			ok, err := schemer.IsCanonical(m)
			switch {
			case err != nil:
				failed++
				fmt.Fprintf(os.Stderr, "%s: re-parsing canonical text: %v\n", in.name, err)
			case !ok:
				failed++
				fmt.Fprintf(os.Stderr, "%s: canonical text does not round trip\n", in.name)
			case !cfg.Quiet:
				fmt.Fprintf(cc.Out, "%s: ok\n", in.name)
			}
			continue
		}
		failed++
		if pos, ok := parse.Position(err); ok {
			line, col := pos.LineCol()
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %v\n", in.name, line, col, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", in.name, err)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
