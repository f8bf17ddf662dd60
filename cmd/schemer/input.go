package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/schemer/dirbuild"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/parse"

	"github.com/scott-cotton/cli"
)

// input is one schema source named on the command line, "-" for
// standard input.
type input struct {
	name string
	data []byte
}

func readInputs(cc *cli.Context, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		if isDir(file) {
			dFiles, err := dirbuild.SchemaFiles(file, dirbuild.DefaultSuffix)
			if err != nil {
				return nil, err
			}
			dIns, err := readInputs(cc, dFiles)
			if err != nil {
				return nil, err
			}
			res = append(res, dIns...)
			continue
		}
		in, err := readInput(cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, in)
	}
	return res, nil
}

func isDir(path string) bool {
	if path == "-" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func readInput(cc *cli.Context, path string) (input, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return input{}, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return input{}, fmt.Errorf("error reading %q: %w", path, err)
	}
	return input{name: path, data: d}, nil
}

// moduleName names the module of a file after its base name without
// extension.
func moduleName(path string) string {
	if path == "-" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (in input) parse(opts ...parse.ParseOption) (*ir.Module, error) {
	m, err := parse.ParseModule(in.data, moduleName(in.name), opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", in.name, err)
	}
	return m, nil
}
