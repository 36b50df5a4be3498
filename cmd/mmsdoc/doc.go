// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Mmsdoc extracts function documentation from a libiec61850 style C header and
writes it as a CSV table.

# Usage

	$ mmsdoc [flags...] <header>

The table is written to a file with the same name as the header in the
current directory, unless -o is given. A header of "-" is read from standard
input and then needs -o. It has one row per function
declaration and the columns Full Name, Return Type, Name, Description,
Params, Return Value and Notes.

Functions are recognized by the declaration prefix (MmsValue by default) at
the start of a line, and their return type by the API prefix (LIB61850_API by
default) on the line before. The \brief, \param and \return tags of the
preceding comment fill the Description, Params and Return Value columns; any
other comment text goes to Notes. Functions without a \brief are reported as
undocumented.
*/
package main

import (
	_ "embed"

	"go.mmsdoc.dev/mmsdoc/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
