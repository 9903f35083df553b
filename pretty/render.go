// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pretty

import (
	"fmt"
	"io"
	"strings"
)

// Render renders d to a string, fitting groups to the given line width.
// It panics if width < 0.
func Render(d Doc, width int) string {
	if width < 0 {
		panic(fmt.Sprintf("pretty: negative width %d", width))
	}
	r := &renderer{width: width, rest: width}
	r.walk(d)
	return r.buf.String()
}

// Render is shorthand for [Render] with d.
func (d Doc) Render(width int) string { return Render(d, width) }

// Format renders d to w, fitting groups to the given line width.
func Format(w io.Writer, d Doc, width int) error {
	_, err := io.WriteString(w, Render(d, width))
	return err
}

// Flat returns the flat form of elems, in which every Newline is rendered as
// a single space and every Group is flattened.
func Flat(elems ...Elem) string {
	var sb strings.Builder
	writeFlat(&sb, elems)
	return sb.String()
}

// A renderer holds the state of a single call to Render.
type renderer struct {
	width  int // the target line width
	rest   int // space remaining on the current line; may be negative
	indent int // the current indentation
	buf    strings.Builder
}

func (r *renderer) walk(elems []Elem) {
	for _, e := range elems {
		switch t := e.(type) {
		case Literal:
			r.text(string(t))
		case Text:
			r.text(string(t))
		case Newline:
			r.indent += int(t)
			r.rest = r.width - r.indent
			r.buf.WriteByte('\n')
			if r.indent > 0 {
				r.buf.WriteString(strings.Repeat(" ", r.indent))
			}
		case Group:
			if n := FlatWidth(t...); n <= r.rest {
				writeFlat(&r.buf, t)
				r.rest -= n
			} else {
				r.walk(t)
			}
		default:
			panic(fmt.Sprintf("pretty: unknown element type %T", e))
		}
	}
}

func (r *renderer) text(s string) {
	r.buf.WriteString(s)
	r.rest -= len(s)
}

func writeFlat(sb *strings.Builder, elems []Elem) {
	for _, e := range elems {
		switch t := e.(type) {
		case Literal:
			sb.WriteString(string(t))
		case Text:
			sb.WriteString(string(t))
		case Newline:
			sb.WriteByte(' ')
		case Group:
			writeFlat(sb, t)
		default:
			panic(fmt.Sprintf("pretty: unknown element type %T", e))
		}
	}
}
