// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"go.mmsdoc.dev/mmsdoc/internal/testutil"
)

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		bi   *debug.BuildInfo
		ok   bool
		want Info
	}{
		"no build info": {
			want: Info{Version: "devel"},
		},
		"devel build": {
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			ok:   true,
			want: Info{Version: "devel"},
		},
		"release with vcs stamp": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "3f1c2a9"},
					{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			ok: true,
			want: Info{
				Version: "v1.2.0",
				Commit:  "3f1c2a9",
				BuiltAt: "2026-10-01T12:00:00Z",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := loadInfo(func() (*debug.BuildInfo, bool) { return tc.bi, tc.ok })
			tc.want.Name = "cmd"
			tc.want.Go = runtime.Version()
			tc.want.OS = runtime.GOOS
			tc.want.Arch = runtime.GOARCH
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	i := Info{
		Name:    "mmsdoc",
		Version: "v1.2.0",
		Commit:  "3f1c2a9",
		BuiltAt: "2026-10-01T12:00:00Z",
		Go:      "go1.23.2",
		OS:      "linux",
		Arch:    "amd64",
	}
	testutil.AssertEqual(t, i.String(), "mmsdoc v1.2.0 (go1.23.2, linux/amd64)\ncommit 3f1c2a9\nbuilt at 2026-10-01T12:00:00Z\n")

	i.Commit = ""
	testutil.AssertEqual(t, i.String(), "mmsdoc v1.2.0 (go1.23.2, linux/amd64)\n")
}
