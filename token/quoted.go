package token

import (
	"bytes"
	"strings"
)

// Quote renders s as a Schemer string literal.
func Quote(s string) string {
	buf := &strings.Builder{}
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

// scanQuoted reads the body of a literal opened just before the cursor
// and closed by end, which is consumed. Escapes \n \r \t \\ and an
// escaped first byte of end are processed; any other escape is kept
// as written.
func scanQuoted(s *Scanner, end string) (string, bool) {
	buf := &strings.Builder{}
	ec := rune(end[0])
	for !s.EOF() {
		if bytes.HasPrefix(s.Rest(), []byte(end)) {
			for range end {
				s.Advance()
			}
			return buf.String(), true
		}
		c := s.Top()
		if c != '\\' {
			buf.WriteRune(c)
			s.Advance()
			continue
		}
		s.Advance()
		if s.EOF() {
			buf.WriteByte('\\')
			break
		}
		switch e := s.Top(); e {
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case '\\':
			buf.WriteByte('\\')
		case ec:
			buf.WriteRune(ec)
		default:
			buf.WriteByte('\\')
			buf.WriteRune(e)
		}
		s.Advance()
	}
	return buf.String(), false
}

// IsIdentString reports whether s is spelled like an identifier.
func IsIdentString(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if !isIdentStart(c) && (i == 0 || !isDigit(c)) {
			return false
		}
	}
	return true
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}
