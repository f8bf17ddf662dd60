package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnterminated   = errors.New("unterminated")
	ErrNumberRange    = errors.New("number out of range")
	ErrBadUTF8        = errors.New("bad utf8")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unexpectedCharErr(c rune, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpectedChar, c), p)
}
