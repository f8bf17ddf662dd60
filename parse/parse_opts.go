package parse

import (
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

type parseOpts struct {
	positions   map[*ir.FieldType]token.Pos
	strict      bool
	exactFloats bool
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.exactFloats {
		return []token.TokenOpt{token.TokenExactFloats()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// ParsePositions records the position of each declared field in m.
func ParsePositions(m map[*ir.FieldType]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseStrict rejects object literal fields not declared by the
// object's schema, even when their type could be inferred.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParseExactFloats converts floating literals exactly, see
// [token.TokenExactFloats].
func ParseExactFloats() ParseOption {
	return func(o *parseOpts) { o.exactFloats = true }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.FieldType]token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
