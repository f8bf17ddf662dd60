// Package dirbuild loads a directory of Schemer files into a registry
// of modules, one per file, named after the file.
package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/schemer/debug"
	"github.com/signadot/schemer/format"
	"github.com/signadot/schemer/parse"
	"github.com/signadot/schemer/schema"
)

var DefaultSuffix = format.SchemerFormat.Suffix()

type Dir struct {
	Root    string
	Suffix  string
	Files   []string
	Modules *schema.Registry
}

type DirOpt func(*Dir)

// WithSuffix selects files ending in suffix instead of DefaultSuffix.
func WithSuffix(suffix string) DirOpt {
	return func(d *Dir) { d.Suffix = suffix }
}

// OpenDir parses every file in path ending in the directory's suffix.
// Subdirectories are not visited.
func OpenDir(path string, popts []parse.ParseOption, opts ...DirOpt) (*Dir, error) {
	dir := &Dir{
		Root:    path,
		Suffix:  DefaultSuffix,
		Modules: schema.NewRegistry(),
	}
	for _, opt := range opts {
		opt(dir)
	}
	files, err := SchemaFiles(path, dir.Suffix)
	if err != nil {
		return nil, err
	}
	dir.Files = files
	for _, file := range files {
		d, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", file, err)
		}
		m, err := parse.ParseModule(d, ModuleName(file, dir.Suffix), popts...)
		if err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", file, err)
		}
		if err := dir.Modules.Register(m); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if debug.Parse() {
			debug.Logf("loaded module %q from %s\n", m.Name(), file)
		}
	}
	return dir, nil
}

// SchemaFiles lists the regular files in path ending in suffix, sorted.
func SchemaFiles(path, suffix string) ([]string, error) {
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("could not read directory %q: %w", path, err)
	}
	res := []string{}
	for _, ent := range ents {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), suffix) {
			continue
		}
		res = append(res, filepath.Join(path, ent.Name()))
	}
	slices.Sort(res)
	return res, nil
}

// ModuleName is the base name of file without suffix.
func ModuleName(file, suffix string) string {
	return strings.TrimSuffix(filepath.Base(file), suffix)
}
