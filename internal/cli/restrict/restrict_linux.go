// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build linux && !android

package restrict

import (
	"context"

	"github.com/landlock-lsm/go-landlock/landlock"
	"go.mmsdoc.dev/mmsdoc/internal/cli"
)

// Do restricts all goroutines of this program to p.
func Do(ctx context.Context, p Paths) {
	if err := landlock.V3.BestEffort().Restrict(p.rules()...); err != nil {
		cli.GetEnv(ctx).Logf("Sandboxing failed: %v", err)
	}
}

func (p Paths) rules() []landlock.Rule {
	var rules []landlock.Rule
	if len(p.ReadFiles) > 0 {
		rules = append(rules, landlock.ROFiles(p.ReadFiles...))
	}
	if len(p.WriteDirs) > 0 {
		rules = append(rules, landlock.RWDirs(p.WriteDirs...))
	}
	return rules
}
