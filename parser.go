// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// A Parser consumes input from a Cursor and produces a value of type T.
//
// On success, a parser returns the cursor following the consumed input, its
// value, and a nil error. On failure it returns a non-nil *Error; the other
// results are then unspecified. A Parser must be a pure function of its input
// cursor, so that the same parser value can be run any number of times.
type Parser[T any] func(in Cursor) (Cursor, T, *Error)

// Run runs p on input from the beginning. It returns the value produced by p,
// discarding any unconsumed input. If p fails, the error has concrete type
// [*Error].
func Run[T any](p Parser[T], input string) (T, error) {
	_, v, err := p(NewCursor(input))
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Parse is shorthand for [Run] with p.
func (p Parser[T]) Parse(input string) (T, error) { return Run(p, input) }

// Literal returns a parser that consumes exactly the text of s.
func Literal(s string) Parser[string] {
	want := mem.S(s)
	return func(in Cursor) (Cursor, string, *Error) {
		if in.AtEnd() {
			return in, "", in.fail("reached end of input")
		}
		got := in.Peek(len(s))
		if !got.Equal(want) {
			return in, "", in.fail("expected %q, got %q", s, got.StringCopy())
		}
		return in.Advance(len(s)), s, nil
	}
}

// Char returns a parser that consumes the single character c.
// The character is matched by its UTF-8 encoding.
func Char(c rune) Parser[rune] {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)
	want := mem.B(buf[:n])
	return func(in Cursor) (Cursor, rune, *Error) {
		if in.AtEnd() {
			return in, 0, in.fail("reached end of input")
		}
		got := in.Peek(n)
		if !got.Equal(want) {
			r, _ := mem.DecodeRune(got)
			return in, 0, in.fail("expected %q, got %q", c, r)
		}
		return in.Advance(n), c, nil
	}
}

// Until returns a parser that consumes input up to, but not including, the
// first occurrence of delim. The value is a view of the consumed input; the
// caller must copy it if it is needed beyond the lifetime of the input.
// If delim does not begin before the end of the input, the parser fails
// without consuming anything. In particular, it always fails at the end of the
// input, even if delim is empty.
func Until(delim string) Parser[mem.RO] {
	want := mem.S(delim)
	return func(in Cursor) (Cursor, mem.RO, *Error) {
		i := mem.Index(in.Rest(), want)
		if i < 0 || in.AtEnd() {
			return in, mem.RO{}, in.fail("reached end of input looking for %q", delim)
		}
		out := in.Advance(i)
		return out, out.Since(in), nil
	}
}

// End returns a parser that succeeds without consuming input if the cursor is
// at the end of its input, and fails otherwise.
func End() Parser[struct{}] {
	return func(in Cursor) (Cursor, struct{}, *Error) {
		if !in.AtEnd() {
			r, _ := mem.DecodeRune(in.Rest())
			return in, struct{}{}, in.fail("expected end of input, got %q", r)
		}
		return in, struct{}{}, nil
	}
}

// Succeed returns a parser that consumes nothing and yields v.
func Succeed[T any](v T) Parser[T] {
	return func(in Cursor) (Cursor, T, *Error) { return in, v, nil }
}

// Fail returns a parser that consumes nothing and fails at the current
// position with the given message. The failure is retryable.
func Fail[T any](msg string) Parser[T] {
	return func(in Cursor) (Cursor, T, *Error) {
		var zero T
		return in, zero, &Error{Retry: true, Message: msg, Pos: in.pos}
	}
}

// Failf is like [Fail], with a message formatted by [fmt.Sprintf].
func Failf[T any](format string, args ...any) Parser[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// Lazy returns a parser that calls f to construct its underlying parser each
// time it runs. Use Lazy to refer to a rule of a recursive grammar before the
// rule is fully defined.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(in Cursor) (Cursor, T, *Error) { return f()(in) }
}
