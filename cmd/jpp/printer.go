// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/creachadair/mds/mstr"
	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/ast"
	"github.com/tailscale/hujson"
	"github.com/tliron/commonlog"
)

// contextLen is the maximum number of bytes of input shown after the position
// of a parse error.
const contextLen = 32

type printer struct {
	width int
	jwcc  bool
	path  []any
	out   io.Writer
	log   commonlog.Logger
}

// print parses src as a single JSON value and writes it to p.out. A parse
// failure is reported to p.out and is not an error.
func (p *printer) print(src string) error {
	text := src
	if p.jwcc {
		// Standardize replaces comments and trailing commas with spaces, so
		// offsets in the result match the original input.
		std, err := hujson.Standardize([]byte(src))
		if err != nil {
			p.log.Debugf("standardize input: %v", err)
		} else {
			text = string(std)
		}
	}

	v, err := ast.ParseString(text)
	if err != nil {
		var perr *pcomb.Error
		if !errors.As(err, &perr) {
			return err
		}
		p.log.Infof("parse failed at offset %d", perr.Pos)
		return writeError(p.out, src, perr)
	}
	p.log.Debugf("parsed %d bytes of input", len(src))

	if len(p.path) != 0 {
		v, err = ast.Path(v, p.path...)
		if err != nil {
			return fmt.Errorf("path: %w", err)
		}
	}
	_, err = fmt.Fprintln(p.out, ast.Format(v, p.width))
	return err
}

// printLines reads lines from lr until it is exhausted, and prints each
// non-blank line as a separate JSON value.
func (p *printer) printLines(lr lineReader) error {
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := p.print(line); err != nil {
			return err
		}
	}
}

func writeError(w io.Writer, input string, err *pcomb.Error) error {
	lc := pcomb.LineColOf(input, err.Pos)
	kind := "committed"
	if err.Retry {
		kind = "retryable"
	}
	_, werr := fmt.Fprintf(w, "ERROR\n%d:%d: %s\n  offset %d, %s\n  near %q\n",
		lc.Line, lc.Column, err.Message, err.Pos, kind, mstr.Trunc(input[err.Pos:], contextLen))
	return werr
}

// A lineReader reads input one line at a time. At the end of input ReadLine
// reports io.EOF.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

// newLineReader returns a lineReader for in. If in is a terminal, lines are
// read with editing and history; otherwise they are read directly.
func newLineReader(in io.Reader, out io.Writer) (lineReader, error) {
	if f, ok := in.(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
		ir, err := newInteractiveReader(f, out)
		if err != nil {
			return nil, err
		}
		return ir, nil
	}
	return newDirectReader(in), nil
}

// directReader reads lines from an arbitrary stream.
type directReader struct{ r *bufio.Reader }

func newDirectReader(r io.Reader) directReader { return directReader{r: bufio.NewReader(r)} }

func (d directReader) ReadLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSuffix(line, "\n"), err
}

func (directReader) Close() error { return nil }

// interactiveReader reads lines with editing and history from a terminal.
type interactiveReader struct{ rl *readline.Instance }

func newInteractiveReader(in io.Reader, out io.Writer) (interactiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "jpp> ",
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		return interactiveReader{}, fmt.Errorf("create readline: %w", err)
	}
	return interactiveReader{rl: rl}, nil
}

func (r interactiveReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r interactiveReader) Close() error { return r.rl.Close() }
