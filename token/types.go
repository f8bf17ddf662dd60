package token

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TNone TokenType = iota
	TIdent
	TInteger
	TFloating
	TString
	TBoolean
	TType
	TSpecial
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNone:     "TNone",
		TIdent:    "TIdent",
		TInteger:  "TInteger",
		TFloating: "TFloating",
		TString:   "TString",
		TBoolean:  "TBoolean",
		TType:     "TType",
		TSpecial:  "TSpecial",
		TEOF:      "TEOF",
	}[t]
}

// TypeName names one of the primitive schema types.
type TypeName int

const (
	TypeString TypeName = iota
	TypeInteger
	TypeFloating
	TypeBoolean
	TypeObject
	TypeAny
)

var typeNames = [...]string{
	TypeString:   "string",
	TypeInteger:  "integer",
	TypeFloating: "floating",
	TypeBoolean:  "boolean",
	TypeObject:   "object",
	TypeAny:      "any",
}

func (n TypeName) String() string {
	if n < 0 || int(n) >= len(typeNames) {
		return fmt.Sprintf("TypeName(%d)", int(n))
	}
	return typeNames[n]
}

// Special enumerates punctuation and the keyword-like specials.
type Special int

const (
	SLParen Special = iota
	SRParen
	SLBrace
	SRBrace
	SLBracket
	SRBracket
	SEqual
	SComma
	SInterval
	SColon
	SSemicolon
	SPlus
	SMinus
	SHash
	SEnum
	SNull
)

var specialText = [...]string{
	SLParen:    "(",
	SRParen:    ")",
	SLBrace:    "{",
	SRBrace:    "}",
	SLBracket:  "[",
	SRBracket:  "]",
	SEqual:     "=",
	SComma:     ",",
	SInterval:  "..",
	SColon:     ":",
	SSemicolon: ";",
	SPlus:      "+",
	SMinus:     "-",
	SHash:      "#",
	SEnum:      "enum",
	SNull:      "null",
}

func (s Special) String() string {
	if s < 0 || int(s) >= len(specialText) {
		return fmt.Sprintf("Special(%d)", int(s))
	}
	return specialText[s]
}

// Token is a lexical token. Which payload field is meaningful depends
// on Type.
type Token struct {
	Type TokenType
	Pos  Pos
	// Literal is the source text the token was lexed from.
	Literal string

	Str     string
	Int     int64
	Float   float64
	Bool    bool
	Name    TypeName
	Special Special
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String renders the token the way it would appear in source.
func (t *Token) String() string {
	switch t.Type {
	case TNone:
		return ""
	case TIdent:
		return t.Str
	case TInteger:
		return strconv.FormatInt(t.Int, 10)
	case TFloating:
		return FormatFloat(t.Float)
	case TString:
		return Quote(t.Str)
	case TBoolean:
		return strconv.FormatBool(t.Bool)
	case TType:
		return t.Name.String()
	case TSpecial:
		return t.Special.String()
	case TEOF:
		return "end of input"
	default:
		return t.Literal
	}
}

// IsWord reports whether the token is spelled like an identifier. Such
// tokens may serve as field or option names.
func (t *Token) IsWord() bool {
	switch t.Type {
	case TIdent, TType, TBoolean:
		return true
	case TSpecial:
		return t.Special == SEnum || t.Special == SNull
	}
	return false
}

// Word returns the spelling of a word token.
func (t *Token) Word() string {
	if t.Type == TIdent {
		return t.Str
	}
	return t.String()
}

func (t *Token) IsSpecial(s Special) bool {
	return t.Type == TSpecial && t.Special == s
}

// Pred is a token predicate.
type Pred func(*Token) bool

func IsSpecial(s Special) Pred {
	return func(t *Token) bool { return t.IsSpecial(s) }
}

func IsType(t *Token) bool {
	return t.Type == TType
}

func IsIdent(t *Token) bool {
	return t.Type == TIdent
}

func IsString(t *Token) bool {
	return t.Type == TString
}

func IsBoolean(t *Token) bool {
	return t.Type == TBoolean
}

func IsInteger(t *Token) bool {
	return t.Type == TInteger
}

// IsNumber accepts integer and floating literals.
func IsNumber(t *Token) bool {
	return t.Type == TInteger || t.Type == TFloating
}

func IsSign(t *Token) bool {
	return t.IsSpecial(SPlus) || t.IsSpecial(SMinus)
}

// Or combines predicates.
func Or(ps ...Pred) Pred {
	return func(t *Token) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// FormatFloat formats f so that it lexes back as a floating token.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
