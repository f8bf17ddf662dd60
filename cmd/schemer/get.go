package main

import (
	"fmt"

	"github.com/signadot/schemer/dirbuild"
	"github.com/signadot/schemer/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a field path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if len(args) == 2 && isDir(args[1]) {
		return getDir(cfg, cc, path, args[1])
	}
	ins, err := readInputs(cc, args[1:])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, in := range ins {
		m, err := in.parse(cfg.parseOpts()...)
		if err != nil {
			return err
		}
		e, err := m.Lookup(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", in.name, path, err)
		}
		if err := encode.EncodeElement(e, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

// getDir resolves path against the modules of a directory, the first
// step of path naming the module.
func getDir(cfg *GetConfig, cc *cli.Context, path, root string) error {
	dir, err := dirbuild.OpenDir(root, cfg.parseOpts())
	if err != nil {
		return err
	}
	e, err := dir.Modules.Get(path)
	if err != nil {
		return fmt.Errorf("error querying %s with %s: %w", root, path, err)
	}
	return encode.EncodeElement(e, cc.Out, cfg.encOpts(cc.Out)...)
}
