// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package hdrdoc extracts function documentation from C headers written in
// the libiec61850 style:
//
//	/**
//	 * \brief Gets a value.
//	 *
//	 * \param self the object.
//	 *
//	 * \return the value.
//	 */
//	LIB61850_API MmsValue*
//	MmsValue_getInt(MmsValue* self);
//
// The parser is line oriented and permissive. It never fails on malformed
// comments; missing pieces end up as empty or default fields.
package hdrdoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Default markers of the libiec61850 MmsValue API.
const (
	DefaultDeclMarker = "MmsValue"
	DefaultAPIMarker  = "LIB61850_API"
)

// Field values used when documentation is missing.
const (
	NoDocumentation = "No documentation provided"
	Unknown         = "Unknown"
	VoidReturn      = "(none, void)"
)

const (
	briefTag  = `* \brief`
	paramTag  = `* \param`
	returnTag = `* \return`

	maxLineSize = 1 << 20
)

// Record is the documentation of a single function.
type Record struct {
	FullName    string // declaration text, continuation lines joined
	ReturnType  string
	Name        string // between the first '_' and the first '('
	Brief       string
	Params      string // "- " bullets, one per \param
	ReturnValue string
	Notes       string // "-  " bullets, one per untagged comment line
}

// Row returns the record's fields in table column order.
func (r Record) Row() []string {
	return []string{r.FullName, r.ReturnType, r.Name, r.Brief, r.Params, r.ReturnValue, r.Notes}
}

// Markers are the line prefixes that identify a function declaration and its
// return type line. Empty fields mean the defaults.
type Markers struct {
	// Decl starts a function declaration line, e.g. "MmsValue" in
	// "MmsValue_getInt(MmsValue* self);".
	Decl string
	// API starts the return type line, e.g. "LIB61850_API" in
	// "LIB61850_API MmsValue*".
	API string
}

// DefaultMarkers returns the markers of the libiec61850 MmsValue API.
func DefaultMarkers() Markers {
	return Markers{Decl: DefaultDeclMarker, API: DefaultAPIMarker}
}

func (m Markers) withDefaults() Markers {
	if m.Decl == "" {
		m.Decl = DefaultDeclMarker
	}
	if m.API == "" {
		m.API = DefaultAPIMarker
	}
	return m
}

// ParseFile parses the header file at name.
func ParseFile(name string, m Markers) ([]Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Parse(f, m)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return recs, nil
}

// Parse reads a header from r and returns one record per declaration line, in
// input order. The only errors are read errors from r.
func Parse(r io.Reader, m Markers) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	p := &parser{sc: sc, m: m.withDefaults()}
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		p.classify(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.records, nil
}
