package token

import (
	"math"
	"strconv"
)

// scanNumber scans a decimal literal starting at a digit. Without a
// fractional or exponent part the result is an integer and the cursor
// stays before any trailing '.'.
//
// Floating values are accumulated digit by digit and scaled by repeated
// multiplication unless exact is set, in which case the scanned text is
// converted with strconv.
func scanNumber(s *Scanner, exact bool) (Token, error) {
	start := s.Backup()
	pos := s.Pos()
	var (
		d        int64
		a        float64
		e        int64
		overflow bool
	)
	for isDigit(s.Top()) {
		v := int64(s.Top() - '0')
		if d > (math.MaxInt64-v)/10 {
			overflow = true
		}
		d = d*10 + v
		a = a*10 + float64(v)
		s.Advance()
	}
	intEnd := s.Backup()
	found := false
	if s.Top() == '.' && isDigit(s.Peek(1)) {
		s.Advance()
		for isDigit(s.Top()) {
			found = true
			a = a*10 + float64(s.Top()-'0')
			e--
			s.Advance()
		}
	}
	if c := s.Top(); c == 'e' || c == 'E' {
		expMark := s.Backup()
		s.Advance()
		sign := int64(1)
		switch s.Top() {
		case '+':
			s.Advance()
		case '-':
			s.Advance()
			sign = -1
		}
		if !isDigit(s.Top()) {
			s.Restore(expMark)
		} else {
			var x int64
			for isDigit(s.Top()) {
				if x < 100000 {
					x = x*10 + int64(s.Top()-'0')
				}
				s.Advance()
			}
			found = true
			e += x * sign
		}
	}
	if !found {
		s.Restore(intEnd)
		lit := string(s.Since(start))
		if overflow {
			return Token{}, NewTokenizeErr(ErrNumberRange, pos)
		}
		return Token{Type: TInteger, Pos: pos, Literal: lit, Int: d}, nil
	}
	lit := string(s.Since(start))
	if exact {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Token{}, NewTokenizeErr(ErrNumberRange, pos)
		}
		a = f
	} else {
		for ; e > 0; e-- {
			a *= 10
		}
		for ; e < 0; e++ {
			a *= 0.1
		}
		if math.IsInf(a, 0) {
			return Token{}, NewTokenizeErr(ErrNumberRange, pos)
		}
	}
	return Token{Type: TFloating, Pos: pos, Literal: lit, Float: a}, nil
}
