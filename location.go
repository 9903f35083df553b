package pcomb

import "strings"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// LineColOf reports the line and column of the absolute byte offset pos in
// input. Offsets past the end of input are clamped to the end.
func LineColOf(input string, pos int) LineCol {
	pos = min(max(pos, 0), len(input))
	head := input[:pos]
	line := strings.Count(head, "\n") + 1
	return LineCol{Line: line, Column: pos - (strings.LastIndexByte(head, '\n') + 1)}
}
