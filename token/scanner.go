package token

import "unicode/utf8"

// Scanner is a cursor over UTF-8 text.
//
// The zero value is not usable; see [NewScanner].
type Scanner struct {
	d   []byte
	pos Pos
}

// Mark is a snapshot of a [Scanner] cursor, see [Scanner.Backup].
type Mark struct {
	pos Pos
}

// Offset returns the byte offset of the mark.
func (m Mark) Offset() int {
	return m.pos.Offset
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d, pos: Pos{Line: 1, Col: 1}}
}

// Top returns the current character, or 0 at the end of input.
//
// Invalid UTF-8 is reported as utf8.RuneError.
func (s *Scanner) Top() rune {
	if s.EOF() {
		return 0
	}
	c := s.d[s.pos.Offset]
	if c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRune(s.d[s.pos.Offset:])
	return r
}

// Peek returns the character n bytes after the current one, or 0.
// It is only meaningful for ASCII lookahead.
func (s *Scanner) Peek(n int) rune {
	i := s.pos.Offset + n
	if i >= len(s.d) {
		return 0
	}
	return rune(s.d[i])
}

func (s *Scanner) EOF() bool {
	return s.pos.Offset >= len(s.d)
}

// Advance moves past the current character and returns the number of
// bytes consumed.
func (s *Scanner) Advance() int {
	if s.EOF() {
		return 0
	}
	n := 1
	c := s.d[s.pos.Offset]
	if c >= utf8.RuneSelf {
		_, n = utf8.DecodeRune(s.d[s.pos.Offset:])
	}
	s.pos.Offset += n
	if c == '\n' {
		s.pos.Line++
		s.pos.Col = 1
	} else {
		s.pos.Col++
	}
	return n
}

// AdvanceWhile advances while f accepts the current character and
// returns the number of bytes consumed.
func (s *Scanner) AdvanceWhile(f func(rune) bool) int {
	n := 0
	for !s.EOF() && f(s.Top()) {
		n += s.Advance()
	}
	return n
}

func (s *Scanner) Pos() Pos {
	return s.pos
}

func (s *Scanner) Backup() Mark {
	return Mark{pos: s.pos}
}

func (s *Scanner) Restore(m Mark) {
	s.pos = m.pos
}

// Since returns the text between m and the current position.
func (s *Scanner) Since(m Mark) []byte {
	return s.d[m.pos.Offset:s.pos.Offset]
}

// Rest returns the unscanned input.
func (s *Scanner) Rest() []byte {
	return s.d[s.pos.Offset:]
}
