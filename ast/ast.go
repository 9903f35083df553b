// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, a parser that constructs
// syntax trees from JSON source, and a conversion from syntax trees to
// documents that can be rendered by package pretty.
package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/pcomb/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Object, Array, String, Number, Bool, or Null.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members, in the order they were
// defined. Duplicate keys are retained.
type Object []*Member

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
// The key is compared to the raw text of each member's key.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if string(m.Key) == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   String
	Value Value
}

// JSON returns the compact encoding of m as an object member.
func (m *Member) JSON() string { return m.Key.JSON() + ":" + m.Value.JSON() }

// Field constructs an object member with the given key and value.
// The value is converted as by [ToValue].
func Field(key string, value any) *Member {
	return &Member{Key: Quote(key), Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is the raw text of a JSON string, excluding the quotation marks.
// Escape sequences are not decoded; use Unescape to decode them.
type String string

// Quote returns the String that encodes s, escaping as needed.
func Quote(s string) String { return String(escape.Quote(mem.S(s))) }

// Unescape returns the text of s with escape sequences decoded.
func (s String) Unescape() (string, error) {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + string(s) + `"` }

// A Number is a numeric value.
type Number float64

// JSON satisfies the Value interface. The value is formatted in the shortest
// form that represents it exactly, using an exponent only for large exponents.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// ToValue converts a Go value into an equivalent Value.
// It accepts nil, bool, string, the built-in integer and floating-point
// types, slices of any, maps from string to any, and values that already
// implement Value. ToValue panics for any other type. Map keys are sorted so
// that the result is deterministic.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return Quote(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		out := make(Object, len(keys))
		for i, key := range keys {
			out[i] = Field(key, t[key])
		}
		return out
	default:
		panic(fmt.Sprintf("ast.ToValue: unsupported type %T", v))
	}
}
