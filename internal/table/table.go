// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package table writes documentation records as CSV.
package table

import (
	"bytes"
	"encoding/csv"
	"io"

	"go.mmsdoc.dev/mmsdoc/internal/atomicio"
	"go.mmsdoc.dev/mmsdoc/internal/hdrdoc"
)

// Header is the first row of every table.
var Header = []string{
	"Full Name",
	"Return Type",
	"Name",
	"Description",
	"Params",
	"Return Value",
	"Notes",
}

// Write writes the header and one row per record to w. Rows end in "\r\n";
// line breaks inside fields are kept as "\n".
func Write(w io.Writer, records []hdrdoc.Record) error {
	var row bytes.Buffer
	cw := csv.NewWriter(&row)
	write := func(fields []string) error {
		row.Reset()
		if err := cw.Write(fields); err != nil {
			return err
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		b := append(bytes.TrimSuffix(row.Bytes(), []byte("\n")), '\r', '\n')
		_, err := w.Write(b)
		return err
	}

	if err := write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := write(r.Row()); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the table to the file name, replacing it atomically.
func WriteFile(name string, records []hdrdoc.Record) error {
	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		return err
	}
	return atomicio.WriteFile(name, buf.Bytes(), 0o644)
}
