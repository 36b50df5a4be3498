// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package hdrdoc

import (
	"bufio"
	"strings"
)

// state accumulates the documentation seen since the last declaration.
type state struct {
	brief       string
	params      string
	returnType  string
	returnValue string
	notes       string
}

func (s *state) reset() { *s = state{} }

type parser struct {
	sc      *bufio.Scanner
	m       Markers
	st      state
	records []Record
}

// next returns the next trimmed line. The input is only ever read forward.
func (p *parser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.sc.Text()), true
}

// A rule handles the lines it matches. Rules are tried in order and the first
// match wins.
type rule struct {
	name   string
	match  func(m Markers, line string) bool
	handle func(p *parser, line string)
}

var rules = []rule{
	{"skip", func(_ Markers, line string) bool { return isSkipped(line) }, func(*parser, string) {}},
	{"declaration", func(m Markers, line string) bool { return strings.HasPrefix(line, m.Decl) }, (*parser).flush},
	{"return type", func(m Markers, line string) bool { return strings.HasPrefix(line, m.API) }, (*parser).returnType},
	{"brief", hasTag(briefTag), (*parser).brief},
	{"param", hasTag(paramTag), (*parser).param},
	{"return", hasTag(returnTag), (*parser).returnValue},
	{"note", func(Markers, string) bool { return true }, (*parser).note},
}

func hasTag(tag string) func(Markers, string) bool {
	return func(_ Markers, line string) bool { return strings.HasPrefix(line, tag) }
}

func isSkipped(line string) bool {
	switch line {
	case "", "/**", "*", "/*", "*/":
		return true
	}
	return false
}

// ruleFor returns the first rule matching line.
func ruleFor(m Markers, line string) rule {
	for _, r := range rules {
		if r.match(m, line) {
			return r
		}
	}
	panic("unreachable: note rule matches everything")
}

func (p *parser) classify(line string) {
	ruleFor(p.m, line).handle(p, line)
}

func (p *parser) returnType(line string) {
	p.st.returnType = strings.TrimSpace(line[len(p.m.API):])
}

func (p *parser) brief(line string) {
	p.st.brief += p.accumulate(line[len(briefTag):]) + "\n\n"
}

func (p *parser) param(line string) {
	p.st.params += "- " + p.accumulate(line[len(paramTag):]) + "\n\n"
}

func (p *parser) returnValue(line string) {
	p.st.returnValue += p.accumulate(line[len(returnTag):]) + "\n\n"
}

func (p *parser) note(line string) {
	p.st.notes += "-  " + p.accumulate(stripCommentMarker(line)) + "\n\n"
}

// accumulate joins first with the lines that continue it. A field ends at a
// blank line, a lone "*" or "*/", which is consumed. A \param line does not
// end the field; it is folded in as a new bullet.
func (p *parser) accumulate(first string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(first))
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(line, paramTag):
			sb.WriteString("\n- ")
			sb.WriteString(strings.TrimSpace(line[len(paramTag):]))
		case line == "*" || line == "*/" || line == "":
			return sb.String()
		default:
			sb.WriteByte(' ')
			sb.WriteString(stripCommentMarker(line))
		}
	}
	return sb.String()
}

// flush turns the accumulated state into a record for the declaration
// starting at line and resets the state.
func (p *parser) flush(line string) {
	full := p.declaration(line)
	st := p.st

	// Only a missing brief marks the function as undocumented, and then all
	// three fields get defaults at once.
	if st.brief == "" {
		st.brief = NoDocumentation
		st.params = Unknown
		st.returnValue = Unknown
	}
	if st.returnType == "void" {
		st.returnValue = VoidReturn
	}

	p.records = append(p.records, Record{
		FullName:    full,
		ReturnType:  st.returnType,
		Name:        simpleName(full),
		Brief:       st.brief,
		Params:      st.params,
		ReturnValue: st.returnValue,
		Notes:       st.notes,
	})
	p.st.reset()
}

// declaration merges first with every following line up to the next blank
// line. Each continuation line loses its first two characters, whatever they
// are, so "int index);" continues as "t index);".
func (p *parser) declaration(first string) string {
	var sb strings.Builder
	sb.WriteString(first)
	for {
		line, ok := p.next()
		if !ok || line == "" {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(dropChars(line, 2))
	}
	return sb.String()
}

// simpleName returns the text between the first '_' and the first '(' of a
// declaration. Without a '_' the name starts at the beginning; without a '('
// it stops one byte short of the end.
func simpleName(decl string) string {
	start := strings.IndexByte(decl, '_') + 1
	end := strings.IndexByte(decl, '(')
	if end < 0 {
		end = len(decl) - 1
	}
	if end < start {
		return ""
	}
	return decl[start:end]
}

// dropChars returns s without its first n characters.
func dropChars(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// stripCommentMarker removes the leading '*' of a comment body line.
func stripCommentMarker(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "*"))
}
