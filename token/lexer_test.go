package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// brief strips positions and literals so streams compare by meaning.
func brief(toks []Token) []Token {
	if len(toks) == 0 {
		return nil
	}
	res := make([]Token, len(toks))
	for i := range toks {
		t := toks[i]
		t.Pos = Pos{}
		t.Literal = ""
		res[i] = t
	}
	return res
}

func ident(s string) Token { return Token{Type: TIdent, Str: s} }
func integer(i int64) Token { return Token{Type: TInteger, Int: i} }
func floating(f float64) Token { return Token{Type: TFloating, Float: f} }
func str(s string) Token { return Token{Type: TString, Str: s} }
func special(s Special) Token { return Token{Type: TSpecial, Special: s} }
func typ(n TypeName) Token { return Token{Type: TType, Name: n} }
func boolean(b bool) Token { return Token{Type: TBoolean, Bool: b} }

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []Token
	}{
		{name: "empty", in: "", out: nil},
		{name: "ident", in: "abc", out: []Token{ident("abc")}},
		{name: "longest match", in: "integers", out: []Token{ident("integers")}},
		{name: "keyword prefix digit", in: "enum2", out: []Token{ident("enum2")}},
		{name: "keyword", in: "integer", out: []Token{typ(TypeInteger)}},
		{name: "any keyword", in: "any anything", out: []Token{typ(TypeAny), ident("anything")}},
		{name: "float exponent", in: "1.5e2", out: []Token{floating(150)}},
		{name: "integer", in: "42", out: []Token{integer(42)}},
		{name: "exponent only", in: "2e3", out: []Token{floating(2000)}},
		{name: "negative exponent", in: "25E-1", out: []Token{floating(2.5)}},
		{name: "dangling exponent", in: "1e", out: []Token{integer(1), ident("e")}},
		{name: "interval", in: "1..10", out: []Token{integer(1), special(SInterval), integer(10)}},
		{name: "open interval", in: "..-3", out: []Token{special(SInterval), special(SMinus), integer(3)}},
		{name: "signs", in: "+1 -2.5", out: []Token{special(SPlus), integer(1), special(SMinus), floating(2.5)}},
		{
			name: "field",
			in:   `a(readonly): string[] enum {"x", "y"} = ["x"]`,
			out: []Token{
				ident("a"), special(SLParen), ident("readonly"), special(SRParen),
				special(SColon), typ(TypeString), special(SLBracket), special(SRBracket),
				special(SEnum), special(SLBrace), str("x"), special(SComma), str("y"),
				special(SRBrace), special(SEqual), special(SLBracket), str("x"), special(SRBracket),
			},
		},
		{
			name: "comment",
			in:   "a # comment { \n; null true false",
			out:  []Token{ident("a"), special(SSemicolon), special(SNull), boolean(true), boolean(false)},
		},
		{name: "escapes", in: `"a\n\t\r\\\"\q"`, out: []Token{str("a\n\t\r\\\"\\q")}},
		{name: "unicode string", in: `"ȡ∞"`, out: []Token{str("ȡ∞")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.out, brief(toks)); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrailingDotLeavesDot(t *testing.T) {
	s := NewScanner([]byte("3.x"))
	tok, err := scanNumber(s, false)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Type != TInteger || tok.Int != 3 {
		t.Fatalf("got %s %s", tok.Type, tok.String())
	}
	if s.Top() != '.' {
		t.Errorf("expected cursor on '.', got %q", s.Top())
	}
}

func TestExactFloats(t *testing.T) {
	toks, err := Tokenize(nil, []byte("0.30000000000000004"), TokenExactFloats())
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Float != 0.30000000000000004 {
		t.Errorf("got %v", toks[0].Float)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		pos Pos
	}{
		{in: "a\n  @", err: ErrUnexpectedChar, pos: Pos{Offset: 4, Line: 2, Col: 3}},
		{in: `x "abc`, err: ErrUnterminated, pos: Pos{Offset: 2, Line: 1, Col: 3}},
		{in: "99999999999999999999", err: ErrNumberRange, pos: Pos{Offset: 0, Line: 1, Col: 1}},
		{in: "f 1e400", err: ErrNumberRange, pos: Pos{Offset: 2, Line: 1, Col: 3}},
		{in: "a . b", err: ErrUnexpectedChar, pos: Pos{Offset: 2, Line: 1, Col: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tc.in))
			if err == nil {
				t.Fatalf("expected error, got %v", toks)
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Fatalf("expected *TokenizeErr, got %T", err)
			}
			if te.Pos != tc.pos {
				t.Errorf("expected pos %s, got %s", tc.pos, te.Pos)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a:\n  ∞b: 1"))
	if err == nil {
		t.Fatalf("∞ is not a valid character, got %v", toks)
	}
	toks, err = Tokenize(nil, []byte("a:\n  \"∞\": 1"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pos{
		{Offset: 0, Line: 1, Col: 1},
		{Offset: 1, Line: 1, Col: 2},
		{Offset: 5, Line: 2, Col: 3},
		{Offset: 10, Line: 2, Col: 6},
		{Offset: 12, Line: 2, Col: 8},
	}
	got := make([]Pos, len(toks))
	for i := range toks {
		got[i] = toks[i].Pos
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}
}

func TestIsReserved(t *testing.T) {
	for _, s := range []string{"string", "any", "enum", "null", "true"} {
		if !IsReserved(s) {
			t.Errorf("%q should be reserved", s)
		}
	}
	for _, s := range []string{"strings", "x", "", "..", "a b"} {
		if IsReserved(s) {
			t.Errorf("%q should not be reserved", s)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "a\"b", `back\slash`, "nl\nx\r\t", `\q`} {
		toks, err := Tokenize(nil, []byte(Quote(s)))
		if err != nil {
			t.Fatal(err)
		}
		if len(toks) != 1 || toks[0].Str != s {
			t.Errorf("%q: got %v", s, brief(toks))
		}
	}
}

func TestFormatFloat(t *testing.T) {
	for f, s := range map[float64]string{3: "3.0", 2.5: "2.5", -1: "-1.0", 1e21: "1e+21"} {
		if got := FormatFloat(f); got != s {
			t.Errorf("%v: got %q want %q", f, got, s)
		}
	}
}
