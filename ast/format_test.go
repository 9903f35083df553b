// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/pcomb/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

const printerInput = `[42, "foo", true, false, [], [null], {}, {"poem": "Lorem ipsum"},
 {"a": 1, "foo-bar-baz": "1 2 Fizz 4 Buzz 6 7 8 Fizz Buzz",
  "Numbers": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19]}]`

func TestFormat(t *testing.T) {
	v, err := ast.ParseString(printerInput)
	if err != nil {
		t.Fatalf("ParseString: unexpected error: %v", err)
	}
	tests := []struct {
		width int
		want  string
	}{
		{1, `[
  42,
  "foo",
  true,
  false,
  [],
  [
    null
  ],
  {},
  {
    "poem": "Lorem ipsum"
  },
  {
    "a": 1,
    "foo-bar-baz": "1 2 Fizz 4 Buzz 6 7 8 Fizz Buzz",
    "Numbers": [
      1,
      2,
      3,
      4,
      5,
      6,
      7,
      8,
      9,
      10,
      11,
      12,
      13,
      14,
      15,
      16,
      17,
      18,
      19
    ]
  }
]`},
		{84, `[
  42,
  "foo",
  true,
  false,
  [],
  [ null ],
  {},
  { "poem": "Lorem ipsum" },
  {
    "a": 1,
    "foo-bar-baz": "1 2 Fizz 4 Buzz 6 7 8 Fizz Buzz",
    "Numbers": [ 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19 ]
  }
]`},
		{214, `[
  42,
  "foo",
  true,
  false,
  [],
  [ null ],
  {},
  { "poem": "Lorem ipsum" },
  { "a": 1, "foo-bar-baz": "1 2 Fizz 4 Buzz 6 7 8 Fizz Buzz", "Numbers": [ 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19 ] }
]`},
		{215, `[ 42, "foo", true, false, [], [ null ], {}, { "poem": "Lorem ipsum" }, { "a": 1, "foo-bar-baz": "1 2 Fizz 4 Buzz 6 7 8 Fizz Buzz", "Numbers": [ 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19 ] } ]`},
	}
	for _, tc := range tests {
		got := ast.Format(v, tc.width)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Format(%d) (-want, +got):\n%s", tc.width, diff)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	for _, input := range []string{"[]", "{}", "[ ]", "{\n}"} {
		v, err := ast.ParseString(input)
		if err != nil {
			t.Fatalf("ParseString(%q): unexpected error: %v", input, err)
		}
		want := strings.Join(strings.Fields(input), "")
		for _, w := range []int{0, 1, 80} {
			if got := ast.Format(v, w); got != want {
				t.Errorf("Format(%q, %d): got %q, want %q", input, w, got, want)
			}
		}
	}
}

// Rendering at any width produces valid JSON with the same compact encoding
// as the input.
func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		printerInput,
		testJSON,
		`"just a string"`,
		`[[[[]]], {"a": {"b": {"c": [1e21, -0.125]}}}]`,
	}
	for _, input := range inputs {
		v, err := ast.ParseString(input)
		if err != nil {
			t.Fatalf("ParseString: unexpected error: %v", err)
		}
		for w := 0; w <= 100; w += 7 {
			out := ast.Format(v, w)
			hv, err := hujson.Parse([]byte(out))
			if err != nil {
				t.Errorf("Format(%d): invalid output: %v\n%s", w, err, out)
				continue
			} else if !hv.IsStandard() {
				t.Errorf("Format(%d): output is not standard JSON:\n%s", w, out)
			}

			back, err := ast.ParseString(out)
			if err != nil {
				t.Errorf("Format(%d): reparse failed: %v", w, err)
			} else if got, want := back.JSON(), v.JSON(); got != want {
				t.Errorf("Format(%d): reparse got %#q, want %#q", w, got, want)
			}
		}
	}
}

func TestFormatWide(t *testing.T) {
	v, err := ast.ParseString(testJSON)
	if err != nil {
		t.Fatalf("ParseString: unexpected error: %v", err)
	}
	got := ast.Format(v, 1<<20)
	if strings.Contains(got, "\n") {
		t.Errorf("Format wide: got line breaks:\n%s", got)
	}
	if want := ast.Doc(v).Render(1 << 20); got != want {
		t.Errorf("Format wide: got %q, Doc.Render %q", got, want)
	}
}
