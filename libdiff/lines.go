// Package libdiff computes line diffs of text, used to show how a
// source file differs from its canonical form.
package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) prefix() byte {
	switch o {
	case Delete:
		return '-'
	case Insert:
		return '+'
	}
	return ' '
}

// Line is one line of a diff without its newline.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line. In each changed region the
// deleted lines come before the inserted ones.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	res := []Line{}
	var ins []Line
	flush := func() {
		res = append(res, ins...)
		ins = ins[:0]
	}
	for _, d := range diffs {
		for _, ln := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffEqual:
				flush()
				res = append(res, Line{Op: Equal, Text: ln})
			case diffpatch.DiffDelete:
				res = append(res, Line{Op: Delete, Text: ln})
			case diffpatch.DiffInsert:
				ins = append(ins, Line{Op: Insert, Text: ln})
			}
		}
	}
	flush()
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Unified renders the difference between from and to in unified diff
// format with ctx lines of context, or returns "" when they are equal.
func Unified(fromName, toName, from, to string, ctx int) string {
	ls := Lines(from, to)
	changed := []int{}
	for i := range ls {
		if ls[i].Op != Equal {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return ""
	}
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "--- %s\n+++ %s\n", fromName, toName)
	for i := 0; i < len(changed); {
		start := max(0, changed[i]-ctx)
		j := i
		for j+1 < len(changed) && changed[j+1]-changed[j] <= 2*ctx {
			j++
		}
		end := min(len(ls), changed[j]+ctx+1)
		writeHunk(buf, ls, start, end)
		i = j + 1
	}
	return buf.String()
}

func writeHunk(buf *strings.Builder, ls []Line, start, end int) {
	aLine, bLine := 1, 1
	for _, l := range ls[:start] {
		if l.Op != Insert {
			aLine++
		}
		if l.Op != Delete {
			bLine++
		}
	}
	aN, bN := 0, 0
	for _, l := range ls[start:end] {
		if l.Op != Insert {
			aN++
		}
		if l.Op != Delete {
			bN++
		}
	}
	if aN == 0 {
		aLine--
	}
	if bN == 0 {
		bLine--
	}
	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", aLine, aN, bLine, bN)
	for _, l := range ls[start:end] {
		buf.WriteByte(l.Op.prefix())
		buf.WriteString(l.Text)
		buf.WriteByte('\n')
	}
}
