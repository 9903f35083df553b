// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jpp reads a JSON value and pretty-prints it to fit a line width.
//
// Usage:
//
//	jpp [flags] [file]
//
// With no file argument, jpp reads standard input. If the input is not
// valid, jpp prints ERROR followed by a description of the failure to
// standard output.
package main

import (
	"os"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
