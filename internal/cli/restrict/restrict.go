// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package restrict

import (
	"context"
	"testing"
)

// Paths lists what the program may still touch once restricted.
type Paths struct {
	ReadFiles []string // files opened read-only
	WriteDirs []string // directories where files are created and replaced
}

// DoUnlessTesting restricts the program to p, unless it runs under 'go test'.
// A failure to restrict is logged and otherwise ignored.
func DoUnlessTesting(ctx context.Context, p Paths) {
	if !testing.Testing() {
		Do(ctx, p)
	}
}
