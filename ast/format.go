// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/pcomb/pretty"
)

// Doc returns a document that renders v as JSON. Non-empty arrays and objects
// become groups whose elements are indented two spaces when expanded; empty
// ones render as [] and {} regardless of width.
func Doc(v Value) pretty.Doc { return pretty.Doc{toElem(v)} }

// Format renders v as JSON fitted to the given line width.
func Format(v Value, width int) string { return Doc(v).Render(width) }

var (
	openIndent  = pretty.Newline(2)
	closeIndent = pretty.Newline(-2)
	nextElem    = []pretty.Elem{pretty.Literal(","), pretty.Newline(0)}
)

func toElem(v Value) pretty.Elem {
	switch t := v.(type) {
	case Array:
		if len(t) == 0 {
			return pretty.Literal("[]")
		}
		g := pretty.Group{pretty.Literal("["), openIndent}
		for i, elt := range t {
			if i > 0 {
				g = append(g, nextElem...)
			}
			g = append(g, toElem(elt))
		}
		return append(g, closeIndent, pretty.Literal("]"))

	case Object:
		if len(t) == 0 {
			return pretty.Literal("{}")
		}
		g := pretty.Group{pretty.Literal("{"), openIndent}
		for i, m := range t {
			if i > 0 {
				g = append(g, nextElem...)
			}
			g = append(g, pretty.Text(m.Key.JSON()), pretty.Literal(": "), toElem(m.Value))
		}
		return append(g, closeIndent, pretty.Literal("}"))

	case String, Number, Bool, Null:
		return pretty.Text(t.JSON())

	default:
		panic(fmt.Sprintf("ast.Doc: unexpected value type %T", v))
	}
}
