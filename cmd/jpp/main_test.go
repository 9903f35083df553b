// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tliron/commonlog"
)

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetArgs(args)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	const nested = `{"a": [1, 2], "b": {"c": null}}`
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"Default", nested, nil, "{ \"a\": [ 1, 2 ], \"b\": { \"c\": null } }\n"},
		{"Narrow", nested, []string{"-w", "15"}, `{
  "a": [ 1, 2 ],
  "b": {
    "c": null
  }
}
`},
		{"Zero", `[true]`, []string{"--width=0"}, "[\n  true\n]\n"},
		{"PathKey", nested, []string{"-p", "b"}, "{ \"c\": null }\n"},
		{"PathIndex", nested, []string{"-p", "a", "-p", "-1"}, "2\n"},
		{"JWCC", "{\"a\": 1, // note\n \"b\": [2,],}", []string{"--jwcc"}, "{ \"a\": 1, \"b\": [ 2 ] }\n"},

		{"Error", `[1, 2,]`, nil, `ERROR
1:6: expected a JSON value
  offset 6, committed
  near "]"
`},
		{"ErrorLine", "{\n  \"a\": nul\n}", nil, `ERROR
2:7: expected a JSON value
  offset 9, committed
  near "nul\n}"
`},
		{"CommentsWithoutJWCC", "[1 /* x */]", nil, `ERROR
1:2: expected ']', got '/'
  offset 2, committed
  near " /* x */]"
`},
		{"TrailingInput", "[1] x", nil, `ERROR
1:4: expected end of input, got 'x'
  offset 4, committed
  near "x"
`},

		// Input that is not a terminal is read line by line without readline.
		{"Interactive", "[1,2]\n\n{\"k\": true}\n", []string{"-i"}, "[ 1, 2 ]\n{ \"k\": true }\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCmd(t, tc.input, tc.args...)
			if err != nil {
				t.Fatalf("Execute: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRootErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NegativeWidth", []string{"-w", "-1"}},
		{"BadPath", []string{"-p", "nonesuch"}},
		{"TooManyArgs", []string{"a", "b"}},
		{"MissingFile", []string{filepath.Join(t.TempDir(), "nonesuch.json")}},
		{"InteractiveWithFile", []string{"-i", "input.json"}},
		{"MissingConfig", []string{"--config", filepath.Join(t.TempDir(), "nonesuch.toml")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if out, err := runCmd(t, `{"a": 1}`, tc.args...); err == nil {
				t.Errorf("Execute: got %q, want error", out)
			}
		})
	}
}

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(`[ "x" , "y" ]`), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := runCmd(t, "ignored", path)
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if want := "[ \"x\", \"y\" ]\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "jpp.toml")
	if err := os.WriteFile(config, []byte("width = 0\njwcc = true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	const input = "[1, 2,]"

	t.Run("FromFile", func(t *testing.T) {
		got, err := runCmd(t, input, "--config", config)
		if err != nil {
			t.Fatalf("Execute: unexpected error: %v", err)
		}
		if want := "[\n  1,\n  2\n]\n"; got != want {
			t.Errorf("Output: got %q, want %q", got, want)
		}
	})
	t.Run("FlagWins", func(t *testing.T) {
		got, err := runCmd(t, input, "--config", config, "--width", "80")
		if err != nil {
			t.Fatalf("Execute: unexpected error: %v", err)
		}
		if want := "[ 1, 2 ]\n"; got != want {
			t.Errorf("Output: got %q, want %q", got, want)
		}
	})
	t.Run("UnknownKey", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		if err := os.WriteFile(bad, []byte("colour = \"red\"\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if out, err := runCmd(t, input, "--config", bad); err == nil {
			t.Errorf("Execute: got %q, want error", out)
		}
	})
}

func TestPrintLines(t *testing.T) {
	var out bytes.Buffer
	p := &printer{width: 80, out: &out, log: commonlog.GetLogger("jpp-test")}
	input := "[1,2]\n\n  \n{\"k\": true}\n[oops]\nnull"
	if err := p.printLines(newDirectReader(strings.NewReader(input))); err != nil {
		t.Fatalf("printLines: unexpected error: %v", err)
	}
	want := `[ 1, 2 ]
{ "k": true }
ERROR
1:1: expected ']', got 'o'
  offset 1, committed
  near "oops]"
null
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Output (-want, +got):\n%s", diff)
	}
}

func TestParsePath(t *testing.T) {
	got := parsePath([]string{"a", "0", "-2", "b c", "1x"})
	want := []any{"a", 0, -2, "b c", "1x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsePath (-want, +got):\n%s", diff)
	}
}
