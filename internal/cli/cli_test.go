// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.mmsdoc.dev/mmsdoc/internal/cli/envflag"
	"go.mmsdoc.dev/mmsdoc/internal/testutil"
)

type testApp struct {
	ran  bool
	args []string
}

func (a *testApp) Flags(fs *flag.FlagSet) {
	envflag.Value(fs, "name", "TESTAPP_NAME", "default", "Name to greet.")
}

func (a *testApp) Run(ctx context.Context) error {
	env := GetEnv(ctx)
	a.ran = true
	a.args = env.Args
	return nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args    []string
		wantErr error
		wantRan bool
	}{
		"no flags":         {args: []string{"a", "b"}, wantRan: true},
		"help":             {args: []string{"-h"}, wantErr: flag.ErrHelp},
		"version":          {args: []string{"-version"}, wantErr: ErrExitVersion},
		"unknown flag":     {args: []string{"-nope"}},
		"positional after": {args: []string{"-name", "x", "a"}, wantRan: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			app := new(testApp)
			err := Run(WithEnv(context.Background(), &Env{
				Args:   tc.args,
				Stdout: new(bytes.Buffer),
				Stderr: &stderr,
			}), app)

			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("want error %v, got %v", tc.wantErr, err)
			}
			if tc.wantRan && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, app.ran, tc.wantRan)
		})
	}
}

func TestRunStripsFlags(t *testing.T) {
	t.Parallel()

	app := new(testApp)
	if err := Run(WithEnv(context.Background(), &Env{
		Args:   []string{"-name", "x", "a", "b"},
		Stdout: new(bytes.Buffer),
		Stderr: new(bytes.Buffer),
	}), app); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, app.args, []string{"a", "b"})
}

// moveDirApp moves a directory while it runs, like a sandbox that takes away
// access to it.
type moveDirApp struct{ from, to string }

func (a *moveDirApp) Run(context.Context) error { return os.Rename(a.from, a.to) }

func TestRunMemProfileCreatedBeforeApp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	profDir := filepath.Join(dir, "prof")
	if err := os.Mkdir(profDir, 0o755); err != nil {
		t.Fatal(err)
	}
	app := &moveDirApp{from: profDir, to: filepath.Join(dir, "moved")}

	if err := Run(WithEnv(context.Background(), &Env{
		Args:   []string{"-memprofile", filepath.Join(profDir, "mem.out")},
		Stdout: new(bytes.Buffer),
		Stderr: new(bytes.Buffer),
	}), app); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(filepath.Join(app.to, "mem.out"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatal("memory profile is empty")
	}
}

func TestPrintableError(t *testing.T) {
	t.Parallel()

	testutil.AssertEqual(t, isPrintableError(errors.New("boom")), true)
	testutil.AssertEqual(t, isPrintableError(flag.ErrHelp), false)
	testutil.AssertEqual(t, isPrintableError(ErrExitVersion), false)
	testutil.AssertEqual(t, isPrintableError(&unprintableError{errors.New("x")}), false)
}

func TestLogf(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	env := &Env{Stderr: &stderr}
	env.Logf("wrote %d records", 3)
	env.Logf("done")
	testutil.AssertEqual(t, stderr.String(), "wrote 3 records\ndone\n")
}

func TestExtractDocComment(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"// header",
		"",
		"/*",
		"Tool does things.",
		"",
		"# Usage",
		"*/",
		"package main",
		"/*",
		"ignored",
		"*/",
	}, "\n")
	testutil.AssertEqual(t, extractDocComment([]byte(src)), "Tool does things.\n\n# Usage\n")
}
