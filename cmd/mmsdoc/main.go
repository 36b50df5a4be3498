// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.mmsdoc.dev/mmsdoc/internal/cli"
	"go.mmsdoc.dev/mmsdoc/internal/cli/envflag"
	"go.mmsdoc.dev/mmsdoc/internal/cli/restrict"
	"go.mmsdoc.dev/mmsdoc/internal/hdrdoc"
	"go.mmsdoc.dev/mmsdoc/internal/table"
)

func main() { cli.Main(new(app)) }

type app struct {
	output  *string
	decl    *string
	api     *string
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	a.output = envflag.Value(fs, "o", "MMSDOC_OUTPUT", "", "Write the table to `file` instead of the header's base name in the current directory.")
	a.decl = envflag.Value(fs, "decl", "MMSDOC_DECL_MARKER", hdrdoc.DefaultDeclMarker, "Line `prefix` of function declarations.")
	a.api = envflag.Value(fs, "api", "MMSDOC_API_MARKER", hdrdoc.DefaultAPIMarker, "Line `prefix` of return type lines.")
	fs.BoolVar(&a.verbose, "v", false, "Log the number of written records.")
}

const usage = "usage: mmsdoc [flags...] <header>"

// stdinName as the header argument reads the header from standard input.
const stdinName = "-"

var errSameFile = errors.New("output would overwrite the header")

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	// Wrong usage and a missing header are reported, not failed on.
	if len(env.Args) != 1 {
		fmt.Fprintln(env.Stdout, usage)
		return nil
	}
	input := env.Args[0]
	markers := hdrdoc.Markers{Decl: *a.decl, API: *a.api}

	if input == stdinName {
		if *a.output == "" {
			return fmt.Errorf("%w: reading the header from standard input needs -o", cli.ErrInvalidArgs)
		}
		return a.write(ctx, *a.output, nil, func() ([]hdrdoc.Record, error) {
			return hdrdoc.Parse(env.Stdin, markers)
		})
	}

	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(env.Stdout, "file %q does not exist\n", input)
		return nil
	} else if err != nil {
		return err
	}

	output := *a.output
	if output == "" {
		output = filepath.Base(input)
		if sameFile(input, output) {
			return fmt.Errorf("%w %s; use -o to choose another file", errSameFile, input)
		}
	}

	return a.write(ctx, output, []string{input}, func() ([]hdrdoc.Record, error) {
		return hdrdoc.ParseFile(input, markers)
	})
}

// write restricts the process to reading the header files and writing next
// to output, then parses and writes the table.
func (a *app) write(ctx context.Context, output string, headers []string, parse func() ([]hdrdoc.Record, error)) error {
	outDir, err := filepath.Abs(filepath.Dir(output))
	if err != nil {
		return err
	}
	restrict.DoUnlessTesting(ctx, restrict.Paths{ReadFiles: headers, WriteDirs: []string{outDir}})

	records, err := parse()
	if err != nil {
		return err
	}
	if err := table.WriteFile(output, records); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	if a.verbose {
		cli.GetEnv(ctx).Logf("wrote %d records to %s", len(records), output)
	}
	return nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
