// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"

	"go4.org/mem"
)

// A Cursor is a read-only view of an input string together with an absolute
// byte offset into it. A Cursor is never modified; operations that consume
// input return a new Cursor and leave the original valid, so that separate
// alternatives can hold independent positions in the same input.
type Cursor struct {
	body mem.RO
	pos  int
}

// NewCursor returns a cursor positioned at the beginning of input.
func NewCursor(input string) Cursor { return Cursor{body: mem.S(input)} }

// Pos returns the absolute byte offset of c in its input.
func (c Cursor) Pos() int { return c.pos }

// AtEnd reports whether c is positioned at the end of its input.
func (c Cursor) AtEnd() bool { return c.pos >= c.body.Len() }

// Rest returns a view of the input from c to the end.
func (c Cursor) Rest() mem.RO { return c.body.SliceFrom(c.pos) }

// Peek returns a view of at most n bytes of input starting at c.
func (c Cursor) Peek(n int) mem.RO {
	rest := c.Rest()
	if n < rest.Len() {
		return rest.SliceTo(n)
	}
	return rest
}

// Advance returns a cursor n bytes past c. It panics if that would move past
// the end of the input.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || c.pos+n > c.body.Len() {
		panic(fmt.Sprintf("advance %d from offset %d exceeds input length %d", n, c.pos, c.body.Len()))
	}
	return Cursor{body: c.body, pos: c.pos + n}
}

// Since returns a view of the input between start and c. Both cursors must
// refer to the same input, and start must not be after c.
func (c Cursor) Since(start Cursor) mem.RO { return c.body.Slice(start.pos, c.pos) }

// String returns a human-readable description of c, for debugging.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(pos=%d, len=%d)", c.pos, c.body.Len())
}

// fail constructs a retryable error at the position of c.
func (c Cursor) fail(msg string, args ...any) *Error {
	return &Error{Retry: true, Message: fmt.Sprintf(msg, args...), Pos: c.pos}
}
