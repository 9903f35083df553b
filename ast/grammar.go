// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/pcomb"
	"go4.org/mem"
)

// Parse reads all of r and parses it as a single JSON value. Whitespace is
// permitted before and after the value, but no other trailing input.
//
// If the input is not valid, the error has concrete type [*pcomb.Error].
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseString(string(data))
}

// ParseString parses s as a single JSON value, as [Parse].
func ParseString(s string) (Value, error) { return pcomb.Run(document, s) }

// The grammar is recursive: arrays and objects contain values. The value rule
// is assigned by init, and the container rules refer to it lazily.
var value pcomb.Parser[Value]

func init() {
	value = arrayValue.
		Or(objectValue).
		Or(stringValue).
		Or(nullValue).
		Or(boolValue).
		Or(numberValue)
}

func lazyValue() pcomb.Parser[Value] { return value }

var (
	space = pcomb.OrFrom(pcomb.Char(' '), pcomb.Char('\t'), pcomb.Char('\n'), pcomb.Char('\r'))

	// document is a value with optional surrounding whitespace. It is not
	// wrapped with Try, so a committed error inside the value is reported
	// where it occurred.
	document = pcomb.Skip(
		pcomb.Then(pcomb.Many(space), pcomb.Lazy(lazyValue)),
		pcomb.Then(pcomb.Many(space), pcomb.End()),
	)

	comma = token(',')
	colon = token(':')

	arrayValue = pcomb.Map(
		pcomb.Skip(
			pcomb.Then(token('['), pcomb.SepBy(pcomb.Lazy(lazyValue), comma)),
			token(']'),
		),
		func(vs []Value) Value { return Array(vs) },
	)

	objectValue = pcomb.Map(
		pcomb.Skip(
			pcomb.Then(token('{'), pcomb.SepBy(member, comma)),
			token('}'),
		),
		func(ms []*Member) Value { return Object(ms) },
	)

	member = pcomb.Map(
		pcomb.AndLazy(pcomb.Skip(quoted, colon), lazyValue),
		func(p pcomb.Pair[String, Value]) *Member {
			return &Member{Key: p.First, Value: p.Second}
		},
	)

	quoted = pcomb.Skip(
		pcomb.Then(pcomb.Char('"'), pcomb.Map(pcomb.Until(`"`), func(s mem.RO) String {
			return String(s.StringCopy())
		})),
		pcomb.Char('"'),
	)

	stringValue = pcomb.Map(quoted, func(s String) Value { return s })

	nullValue = pcomb.Map(pcomb.Literal("null"), func(string) Value { return Null{} })

	boolValue = pcomb.Map(pcomb.Literal("true").Or(pcomb.Literal("false")), func(s string) Value {
		return Bool(s == "true")
	})

	numberValue = pcomb.Bind(pcomb.Many(numberChar), func(rs []rune) pcomb.Parser[Value] {
		if len(rs) == 0 {
			return pcomb.Fail[Value]("expected a JSON value")
		}
		text := string(rs)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return pcomb.Failf[Value]("invalid number %q", text)
		}
		return pcomb.Succeed[Value](Number(f))
	})

	numberChar = pcomb.OrFrom(
		pcomb.Char('-'), pcomb.Char('+'), pcomb.Char('.'), pcomb.Char('e'), pcomb.Char('E'),
		pcomb.Char('0'), pcomb.Char('1'), pcomb.Char('2'), pcomb.Char('3'), pcomb.Char('4'),
		pcomb.Char('5'), pcomb.Char('6'), pcomb.Char('7'), pcomb.Char('8'), pcomb.Char('9'),
	)
)

// token matches c with optional surrounding whitespace.
func token(c rune) pcomb.Parser[rune] { return pcomb.SurroundedBy(pcomb.Char(c), space) }
