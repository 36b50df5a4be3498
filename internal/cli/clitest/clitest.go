// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest runs table-driven tests against command-line applications.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"go.mmsdoc.dev/mmsdoc/internal/cli"
	"go.mmsdoc.dev/mmsdoc/internal/testutil"
)

// Case is a single invocation of an application and what it should produce.
type Case[App cli.App] struct {
	// Args are the command-line arguments.
	Args []string
	// Stdin is standard input. Nil means empty input.
	Stdin io.Reader
	// Env are the environment variables visible to the application.
	Env map[string]string
	// Dir returns the directory the case runs in. Cases with a Dir change
	// the current directory and are therefore not run in parallel.
	Dir func(*testing.T) string

	// WantErr is matched against the returned error with errors.Is.
	WantErr error
	// WantNothingPrinted requires both stdout and stderr to stay empty.
	WantNothingPrinted bool
	// WantInStdout and WantInStderr are substrings the output must contain.
	WantInStdout string
	WantInStderr string
	// WantFiles maps file names, relative to the case directory, to their
	// expected contents after the run.
	WantFiles map[string]string
	// CheckFunc, if set, runs last.
	CheckFunc func(*testing.T, App)
}

// Run runs every case against a fresh application returned by setup.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.Dir != nil {
				t.Chdir(tc.Dir(t))
			} else {
				t.Parallel()
			}

			app := setup(t)
			stdout, stderr, err := run(tc, app)

			switch {
			case tc.WantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tc.WantErr != nil && err == nil:
				t.Fatalf("must fail with error: %v", tc.WantErr)
			case tc.WantErr != nil && !errors.Is(err, tc.WantErr):
				t.Fatalf("want error %v, got %v", tc.WantErr, err)
			}

			if tc.WantNothingPrinted && (stdout != "" || stderr != "") {
				t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout, stderr)
			}
			if !strings.Contains(stdout, tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout)
			}
			if !strings.Contains(stderr, tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr)
			}

			for name, want := range tc.WantFiles {
				got, err := os.ReadFile(name)
				if err != nil {
					t.Errorf("reading %s: %v", name, err)
					continue
				}
				testutil.AssertEqual(t, string(got), want)
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func run[App cli.App](tc Case[App], app App) (stdout, stderr string, err error) {
	stdin := tc.Stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var outBuf, errBuf bytes.Buffer
	env := &cli.Env{
		Args:   tc.Args,
		Getenv: func(name string) string { return tc.Env[name] },
		Stdin:  stdin,
		Stdout: &outBuf,
		Stderr: &errBuf,
	}
	err = cli.Run(cli.WithEnv(context.Background(), env), app)
	return outBuf.String(), errBuf.String(), err
}
