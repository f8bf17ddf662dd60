package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/signadot/schemer/encode"
	"github.com/signadot/schemer/ir"
)

// Logf writes a formatted message to stderr. Schema arguments are
// rendered as Schemer text, maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.FieldType:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.FieldType] %v", x)
				continue
			}
			args[i] = buf.String()
		case *ir.Element:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeElement(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Element] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
