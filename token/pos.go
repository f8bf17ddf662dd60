package token

import "fmt"

// Pos is a source position. Offset is a byte offset, Line and Col are
// 1-based, with Col counted in characters.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

// Before reports whether p is strictly before q.
func (p Pos) Before(q Pos) bool {
	return p.Offset < q.Offset
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
