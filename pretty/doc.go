// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pretty implements a width-sensitive document renderer.
//
// A document is a sequence of elements: literal text, line breaks that adjust
// the indentation, and groups. When a document is rendered to a given width,
// each group is laid out either flat, on a single line with its line breaks
// replaced by spaces, or expanded, with its line breaks kept. A group is
// flattened if its flat form fits in the space remaining on the current line.
//
//	Element  | Rendered
//	-------- | ------------------------------------------------------------
//	Literal  | its text
//	Text     | its text
//	Newline  | a line break, indented by the running indent plus its delta
//	Group    | flat if it fits in the remaining width, otherwise expanded
//
// Groups are decided outermost first, in a single left-to-right pass. Once a
// group is expanded, its nested groups are decided independently against the
// width remaining at the point where each begins.
package pretty

import "fmt"

// An Elem is an element of a document. The concrete type of an Elem is one of
// Literal, Text, Newline, or Group.
type Elem interface {
	flatWidth() int
}

// A Literal is fixed text, such as punctuation or a keyword.
type Literal string

// Text is text derived from the content being rendered, such as a string or
// a number. It renders the same way as a Literal.
type Text string

// Textf constructs a Text from a format string, as [fmt.Sprintf].
func Textf(format string, args ...any) Text { return Text(fmt.Sprintf(format, args...)) }

// A Newline is a line break. Its value is added to the running indentation
// before the next line is indented.
type Newline int

// A Group is a sequence of elements that is rendered either flat, on a single
// line, or expanded.
type Group []Elem

// A Doc is a complete document. Unlike a Group, the top-level elements of a
// Doc are always rendered expanded.
type Doc []Elem

func (s Literal) flatWidth() int { return len(s) }
func (s Text) flatWidth() int    { return len(s) }
func (Newline) flatWidth() int   { return 1 }
func (g Group) flatWidth() int   { return FlatWidth(g...) }

// FlatWidth reports the length in bytes of the flat form of elems, in which
// every Newline is a single space and every Group is flattened.
func FlatWidth(elems ...Elem) int {
	var n int
	for _, e := range elems {
		n += e.flatWidth()
	}
	return n
}

// Join returns a Group consisting of elems separated by sep.
func Join(sep []Elem, elems ...Elem) Group {
	var out Group
	for i, e := range elems {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, e)
	}
	return out
}
