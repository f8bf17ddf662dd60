package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/schemer/ir"
)

func MustString(f *ir.FieldType, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(f, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
