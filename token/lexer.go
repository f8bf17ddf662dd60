package token

import (
	"sync"
	"unicode"
	"unicode/utf8"
)

type keyword struct {
	tok Token
	// word marks keywords spelled like identifiers; they only match
	// when not followed by an identifier character.
	word bool
}

// Lexer turns Schemer text into tokens.
type Lexer struct {
	trie  *Trie[keyword]
	exact bool
}

type TokenOpt func(*Lexer)

// TokenExactFloats makes floating literals convert with
// strconv.ParseFloat rather than digit accumulation.
func TokenExactFloats() TokenOpt {
	return func(l *Lexer) { l.exact = true }
}

var keywords = sync.OnceValue(func() *Trie[keyword] {
	t := &Trie[keyword]{}
	for s := SLParen; s <= SNull; s++ {
		t.Set(s.String(), newKeyword(Token{Type: TSpecial, Special: s}))
	}
	for n := TypeString; n <= TypeAny; n++ {
		t.Set(n.String(), newKeyword(Token{Type: TType, Name: n}))
	}
	t.Set("true", newKeyword(Token{Type: TBoolean, Bool: true}))
	t.Set("false", newKeyword(Token{Type: TBoolean, Bool: false}))
	return t
})

func newKeyword(tok Token) keyword {
	s := tok.String()
	tok.Literal = s
	return keyword{tok: tok, word: IsIdentString(s)}
}

// IsReserved reports whether s lexes as a keyword rather than an
// identifier.
func IsReserved(s string) bool {
	sc := NewScanner([]byte(s))
	kw, ok := keywords().Get(sc)
	return ok && kw.word && sc.EOF()
}

func NewLexer(opts ...TokenOpt) *Lexer {
	l := &Lexer{trie: keywords()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize appends the tokens of d to dst.
func Tokenize(dst []Token, d []byte, opts ...TokenOpt) ([]Token, error) {
	return NewLexer(opts...).Run(dst, d)
}

// Run appends the tokens of d to dst. On error, no tokens are
// returned.
func (l *Lexer) Run(dst []Token, d []byte) ([]Token, error) {
	if !utf8.Valid(d) {
		return nil, NewTokenizeErr(ErrBadUTF8, badUTF8Pos(d))
	}
	s := NewScanner(d)
	for {
		s.AdvanceWhile(unicode.IsSpace)
		if s.EOF() {
			return dst, nil
		}
		start := s.Backup()
		pos := s.Pos()
		kw, ok := l.trie.Get(s)
		if ok {
			if kw.word && isIdentCont(s.Top()) {
				s.AdvanceWhile(isIdentCont)
				lit := string(s.Since(start))
				dst = append(dst, Token{Type: TIdent, Pos: pos, Literal: lit, Str: lit})
				continue
			}
			if kw.tok.IsSpecial(SHash) {
				s.AdvanceWhile(func(c rune) bool { return c != '\n' })
				continue
			}
			tok := kw.tok
			tok.Pos = pos
			dst = append(dst, tok)
			continue
		}
		c := s.Top()
		switch {
		case isDigit(c):
			tok, err := scanNumber(s, l.exact)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
		case isIdentStart(c):
			s.AdvanceWhile(isIdentCont)
			lit := string(s.Since(start))
			dst = append(dst, Token{Type: TIdent, Pos: pos, Literal: lit, Str: lit})
		case c == '"':
			s.Advance()
			str, ok := scanQuoted(s, `"`)
			if !ok {
				return nil, NewTokenizeErr(ErrUnterminated, pos)
			}
			dst = append(dst, Token{Type: TString, Pos: pos, Literal: string(s.Since(start)), Str: str})
		default:
			return nil, unexpectedCharErr(c, pos)
		}
	}
}

func badUTF8Pos(d []byte) Pos {
	s := NewScanner(d)
	for !s.EOF() {
		r, n := utf8.DecodeRune(s.Rest())
		if r == utf8.RuneError && n <= 1 {
			break
		}
		s.Advance()
	}
	return s.Pos()
}
