package main

import (
	"fmt"

	"github.com/signadot/schemer/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	var tOpts []token.TokenOpt
	if cfg.Exact {
		tOpts = append(tOpts, token.TokenExactFloats())
	}
	for _, in := range ins {
		toks, err := token.Tokenize(nil, in.data, tOpts...)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", in.name, err)
		}
		for i := range toks {
			tok := &toks[i]
			line, col := tok.Pos.LineCol()
			if _, err := fmt.Fprintf(cc.Out, "%s:%d:%d\t%s\t%s\n", in.name, line, col, tok.Info(), tok.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
