// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
)

// settings are the options that may be set by a config file as well as by
// flags. Flags given on the command line take precedence.
type settings struct {
	Width   int  `toml:"width"`
	JWCC    bool `toml:"jwcc"`
	Verbose int  `toml:"verbose"`
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		opts        settings
		paths       []string
		interactive bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "jpp [file]",
		Short: "Pretty-print a JSON value",
		Long: `Read a JSON value and pretty-print it to fit a line width.

If a file is provided, the value is read from it; otherwise it is read
from stdin. With --interactive, each line of input is parsed and printed
on its own.

Each --path element selects an object key, or an array index if it is an
integer. Negative indices count back from the end of the array.

Only whitespace may follow the value. Any other trailing input is reported
as an error.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := loadConfig(configPath, cmd.Flags(), &opts); err != nil {
					return err
				}
			}
			if opts.Width < 0 {
				return fmt.Errorf("invalid width %d", opts.Width)
			}
			commonlog.Configure(opts.Verbose, nil)

			p := &printer{
				width: opts.Width,
				jwcc:  opts.JWCC,
				path:  parsePath(paths),
				out:   out,
				log:   commonlog.GetLogger("jpp"),
			}
			if interactive {
				if len(args) != 0 {
					return errors.New("--interactive does not accept a file argument")
				}
				lr, err := newLineReader(in, out)
				if err != nil {
					return err
				}
				defer lr.Close()
				return p.printLines(lr)
			}

			src, err := readInput(in, args)
			if err != nil {
				return err
			}
			return p.print(src)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&opts.Width, "width", "w", 80, "target line width")
	fs.BoolVar(&opts.JWCC, "jwcc", false, "accept comments and trailing commas in the input")
	fs.StringArrayVarP(&paths, "path", "p", nil, "select a value by key or index (repeatable)")
	fs.BoolVarP(&interactive, "interactive", "i", false, "parse and print each input line separately")
	fs.StringVar(&configPath, "config", "", "read default settings from this TOML file")
	fs.CountVarP(&opts.Verbose, "verbose", "v", "increase log verbosity (repeatable)")
	return cmd
}

func readInput(in io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// loadConfig reads settings from the TOML file at path into opts. A setting
// whose flag was set explicitly in fs is not changed.
func loadConfig(path string, fs *pflag.FlagSet, opts *settings) error {
	var cfg settings
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if md.IsDefined("width") && !fs.Changed("width") {
		opts.Width = cfg.Width
	}
	if md.IsDefined("jwcc") && !fs.Changed("jwcc") {
		opts.JWCC = cfg.JWCC
	}
	if md.IsDefined("verbose") && !fs.Changed("verbose") {
		opts.Verbose = cfg.Verbose
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		return fmt.Errorf("load config: unknown setting %q", keys[0].String())
	}
	return nil
}

// parsePath converts path flags to elements for ast.Path.
func parsePath(elems []string) []any {
	var out []any
	for _, e := range elems {
		if n, err := strconv.Atoi(e); err == nil {
			out = append(out, n)
		} else {
			out = append(out, e)
		}
	}
	return out
}
