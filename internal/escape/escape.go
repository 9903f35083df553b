// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape converts between JSON string escapes and plain text.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Characters with a one-letter JSON escape, in each direction.
var (
	toLetter = map[rune]byte{
		'"': '"', '\\': '\\', '\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't',
	}
	fromLetter = map[byte]byte{
		'"': '"', '\\': '\\', '/': '/', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
	}
)

const hex = "0123456789abcdef"

// Quote returns the JSON escaped form of src, without enclosing quotes.
// Control characters, quotes, and backslashes are escaped, as are the line and
// paragraph separators U+2028 and U+2029. Invalid UTF-8 is escaped as \ufffd.
func Quote(src mem.RO) []byte {
	out := make([]byte, 0, src.Len())
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if b, ok := toLetter[r]; ok {
			out = append(out, '\\', b)
		} else if r < ' ' || r == utf8.RuneError || r == '\u2028' || r == '\u2029' {
			out = appendU(out, r)
		} else {
			out = utf8.AppendRune(out, r)
		}
	}
	return out
}

func appendU(out []byte, r rune) []byte {
	return append(out, '\\', 'u', hex[r>>12&15], hex[r>>8&15], hex[r>>4&15], hex[r&15])
}

// Unquote decodes the JSON escapes in src, which must not include the
// enclosing quotes. An unrecognized escape letter or a malformed \u escape
// decodes as U+FFFD. It reports an error if src ends inside an escape.
func Unquote(src mem.RO) ([]byte, error) {
	out := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(out, src), nil
		}
		out = mem.Append(out, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		if b, ok := fromLetter[c]; ok {
			out = append(out, b)
			continue
		} else if c != 'u' {
			out = utf8.AppendRune(out, utf8.RuneError)
			continue
		}

		if src.Len() < 4 {
			return nil, errors.New("incomplete Unicode escape")
		}
		r, err := parseHex(src.SliceTo(4))
		if err != nil {
			r = utf8.RuneError
		}
		out = utf8.AppendRune(out, r)
		src = src.SliceFrom(4)
	}
}

func parseHex(digits mem.RO) (rune, error) {
	var v rune
	for i := range digits.Len() {
		b := digits.At(i)
		switch {
		case '0' <= b && b <= '9':
			b -= '0'
		case 'a' <= b && b <= 'f':
			b -= 'a' - 10
		case 'A' <= b && b <= 'F':
			b -= 'A' - 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
		v = v<<4 | rune(b)
	}
	return v, nil
}
