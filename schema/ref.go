package schema

import (
	"fmt"

	"github.com/signadot/schemer/ir"
)

// ParseRef splits a reference such as "person.address.city" into the
// module name "person" and the path "address.city" within it. Module
// names containing path syntax are single quoted, as in "'a.b'.c".
func ParseRef(ref string) (string, string, error) {
	p, err := ir.ParsePath(ref)
	if err != nil {
		return "", "", err
	}
	if p == nil || p.Field == nil {
		return "", "", fmt.Errorf("%w: reference %q must start with a module name", ir.ErrBadPath, ref)
	}
	if p.Next == nil {
		return *p.Field, "", nil
	}
	return *p.Field, p.Next.String(), nil
}

// Ref builds the reference to path within module.
func Ref(module, path string) string {
	p := &ir.Path{Field: &module}
	res := p.String()
	if path == "" {
		return res
	}
	if path[0] == '[' {
		return res + path
	}
	return res + "." + path
}
