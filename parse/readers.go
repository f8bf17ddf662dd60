package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

// reader reads literal values of one kind into a target element.
//
// check accepts the first token of a value; read is called once check
// has accepted and that token has been consumed.
type reader interface {
	check(*token.Token) bool
	expected() string
	read(*Parser) error
	isArray() bool
	assign()
}

// enumReader is a reader whose kind supports enum clauses.
type enumReader interface {
	reader
	addEnum(*Parser) error
}

// intervalReader is a reader whose kind supports intervals.
type intervalReader interface {
	reader
	setMin(*Parser) error
	setMax(*Parser) error
	checkInterval(*Parser) error
}

func readerFor(e *ir.Element) reader {
	switch e.Kind {
	case ir.StringKind:
		return &stringReader{t: e.String}
	case ir.IntegerKind:
		return integerReader(e.Integer)
	case ir.FloatingKind:
		return floatingReader(e.Floating)
	case ir.BooleanKind:
		return &booleanReader{t: e.Boolean}
	case ir.ObjectKind:
		return &objectReader{t: e.Object}
	}
	panic(fmt.Sprintf("%v: no reader for %s", errInternal, e.Kind))
}

type stringReader struct {
	t *ir.StringType
}

func (r *stringReader) check(t *token.Token) bool { return t.Type == token.TString }
func (r *stringReader) expected() string          { return "string" }
func (r *stringReader) isArray() bool             { return r.t.IsArray() }
func (r *stringReader) assign()                   { r.t.Assign() }

func (r *stringReader) read(p *Parser) error {
	v := p.cur().Str
	if !r.t.CheckEnum(v) {
		return p.constraint(EnumConstraint, token.Quote(v))
	}
	r.t.Add(v)
	return nil
}

func (r *stringReader) addEnum(p *Parser) error {
	v := p.cur().Str
	if !r.t.AddEnum(v) {
		return p.constraint(DuplicateEnumConstraint, token.Quote(v))
	}
	return nil
}

type booleanReader struct {
	t *ir.BooleanType
}

func (r *booleanReader) check(t *token.Token) bool { return t.Type == token.TBoolean }
func (r *booleanReader) expected() string          { return "true or false" }
func (r *booleanReader) isArray() bool             { return r.t.IsArray() }
func (r *booleanReader) assign()                   { r.t.Assign() }

func (r *booleanReader) read(p *Parser) error {
	r.t.Add(p.cur().Bool)
	return nil
}

// numberReader reads optionally signed numeric literals.
type numberReader[T ir.Numeric] struct {
	t      *ir.NumberType[T]
	name   string
	accept token.Pred
	conv   func(*token.Token) T
	format func(T) string
}

func integerReader(t *ir.IntegerType) *numberReader[int64] {
	return &numberReader[int64]{
		t:      t,
		name:   "integer",
		accept: token.IsInteger,
		conv:   func(tok *token.Token) int64 { return tok.Int },
		format: func(v int64) string { return strconv.FormatInt(v, 10) },
	}
}

func floatingReader(t *ir.FloatingType) *numberReader[float64] {
	return &numberReader[float64]{
		t:      t,
		name:   "floating or integer",
		accept: token.IsNumber,
		conv: func(tok *token.Token) float64 {
			if tok.Type == token.TInteger {
				return float64(tok.Int)
			}
			return tok.Float
		},
		format: token.FormatFloat,
	}
}

func (r *numberReader[T]) check(t *token.Token) bool {
	return r.accept(t) || token.IsSign(t)
}

func (r *numberReader[T]) expected() string { return r.name }
func (r *numberReader[T]) isArray() bool    { return r.t.IsArray() }
func (r *numberReader[T]) assign()          { r.t.Assign() }

// literal converts the consumed literal, applying a leading sign.
func (r *numberReader[T]) literal(p *Parser) (T, error) {
	neg := false
	if tok := p.cur(); token.IsSign(tok) {
		neg = tok.Special == token.SMinus
		if !p.expect(r.accept) {
			return 0, p.unexpected(r.name)
		}
	}
	v := r.conv(p.cur())
	if neg {
		v = -v
	}
	return v, nil
}

func (r *numberReader[T]) read(p *Parser) error {
	v, err := r.literal(p)
	if err != nil {
		return err
	}
	if !r.t.CheckEnum(v) {
		return p.constraint(EnumConstraint, r.format(v))
	}
	if !r.t.CheckInterval(v) {
		return p.constraint(IntervalConstraint, r.format(v))
	}
	r.t.Add(v)
	return nil
}

func (r *numberReader[T]) addEnum(p *Parser) error {
	v, err := r.literal(p)
	if err != nil {
		return err
	}
	if !r.t.AddEnum(v) {
		return p.constraint(DuplicateEnumConstraint, r.format(v))
	}
	return nil
}

func (r *numberReader[T]) setMin(p *Parser) error {
	v, err := r.literal(p)
	if err != nil {
		return err
	}
	r.t.Interval().SetMin(v)
	return nil
}

func (r *numberReader[T]) setMax(p *Parser) error {
	v, err := r.literal(p)
	if err != nil {
		return err
	}
	r.t.Interval().SetMax(v)
	return nil
}

func (r *numberReader[T]) checkInterval(p *Parser) error {
	iv := r.t.Interval()
	if !iv.IsEmpty() {
		return nil
	}
	lo, _ := iv.Min()
	hi, _ := iv.Max()
	return p.constraint(EmptyIntervalConstraint, r.format(lo)+".."+r.format(hi))
}
