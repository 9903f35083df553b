// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import "fmt"

// Error is the concrete type of errors reported by parsers.
//
// Retry reports whether the failure may be discarded by an enclosing
// alternation (see [Parser.Or]). A failure with Retry == false is committed:
// it happened after the grammar consumed input that distinguishes the current
// branch, and it propagates to the caller of [Run] unchanged.
type Error struct {
	Retry   bool   // the failure is safe to backtrack from
	Message string // a human-readable description of the failure
	Pos     int    // the absolute byte offset of the failure
}

// Error satisfies the error interface.
func (e *Error) Error() string { return fmt.Sprintf("at offset %d: %s", e.Pos, e.Message) }

// withRetry returns a copy of e with its Retry flag set to ok.
func (e *Error) withRetry(ok bool) *Error {
	if e.Retry == ok {
		return e
	}
	cp := *e
	cp.Retry = ok
	return &cp
}

// committed returns the error to report when err occurs in the second half
// of a sequence whose first half moved from start to mid. If input was
// consumed, err is committed; otherwise it is reported as-is.
func committed(start, mid Cursor, err *Error) *Error {
	if mid.pos == start.pos {
		return err
	}
	return err.withRetry(false)
}
