// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package conf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// A Conf is an ordered collection of sections. The zero value is an
// empty configuration. A Conf that is no longer being modified can be
// read by multiple concurrent goroutines.
type Conf struct {
	Sections []Section
}

// A Section is a named, ordered list of entries. Duplicate keys are
// permitted and preserved in order.
type Section struct {
	Name    string
	Entries []Entry
}

// An Entry is a single key/value pair. Both fields are arbitrary text
// and may be empty.
type Entry struct {
	Key   string
	Value string
}

// NewSection returns a section with the given name and entries.
func NewSection(name string, entries ...Entry) Section {
	return Section{Name: name, Entries: entries}
}

// An ErrKind identifies the category of a parse failure.
type ErrKind int

const (
	// EntryOutsideOfSection reports a key/value line before any
	// section header.
	EntryOutsideOfSection ErrKind = iota
	// MissingClosingBracket reports a line that starts with '[' but
	// does not end with ']'.
	MissingClosingBracket
	// MissingEquals reports a non-blank, non-header line that contains
	// no '='.
	MissingEquals
)

// String returns a short description of the error kind.
func (k ErrKind) String() string {
	switch k {
	case EntryOutsideOfSection:
		return "entry outside of section"
	case MissingClosingBracket:
		return "missing section closing bracket"
	case MissingEquals:
		return "could not find '='"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// A ParseError describes a syntax error on a single line of the
// input. Line numbers start at 1.
type ParseError struct {
	Line int
	Kind ErrKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse conf: line %d: %s", e.Line, e.Kind)
}

// Parse reads a configuration from r.
//
// Parsing is all-or-nothing: the first syntax error aborts the parse,
// and Parse returns a nil Conf along with a *ParseError naming the
// offending line. Input with no sections, including empty input,
// yields an empty Conf.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
// maxInt is the largest int, used to lift the line length limit of
// bufio.Scanner.
const maxInt = int(^uint(0) >> 1)

func Parse(r io.Reader) (*Conf, error) {
	c := new(Conf)
	s := bufio.NewScanner(r)
	// The format places no limit on line length.
	s.Buffer(nil, maxInt)
	lineno := 1
	for ; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "":
			// Blank lines have no effect, even inside a section.
		case line[0] == '[':
			if line[len(line)-1] != ']' {
				return nil, &ParseError{Line: lineno, Kind: MissingClosingBracket}
			}
			// The name is everything between the outermost brackets,
			// verbatim: "[ foo ]" names the section " foo ".
			c.Sections = append(c.Sections, Section{Name: line[1 : len(line)-1]})
		default:
			i := strings.IndexByte(line, '=')
			if i == -1 {
				return nil, &ParseError{Line: lineno, Kind: MissingEquals}
			}
			if len(c.Sections) == 0 {
				return nil, &ParseError{Line: lineno, Kind: EntryOutsideOfSection}
			}
			curr := &c.Sections[len(c.Sections)-1]
			curr.Entries = append(curr.Entries, Entry{
				Key:   strings.TrimSpace(line[:i]),
				Value: strings.TrimSpace(line[i+1:]),
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse conf: line %d: %w", lineno, err)
	}
	return c, nil
}

// ParseString parses a configuration held in memory.
func ParseString(text string) (*Conf, error) {
	return Parse(strings.NewReader(text))
}

// String renders the entry as "key = value" with no trailing newline.
func (e Entry) String() string {
	return e.Key + " = " + e.Value
}

// String renders the section header followed by one line per entry.
// The result always ends with a newline, even for a section with no
// entries.
func (s Section) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('[')
	sb.WriteString(s.Name)
	sb.WriteByte(']')
	for _, e := range s.Entries {
		sb.WriteByte('\n')
		sb.WriteString(e.String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

// String renders the whole configuration, with consecutive sections
// separated by a single blank line. A Conf with no sections renders
// as the empty string.
//
// The output is normalized (header whitespace, blank-line placement,
// and entry spacing), so it is not guaranteed to be byte-identical to
// the text the Conf was parsed from, but reparsing it reproduces an
// equal Conf.
func (c *Conf) String() string {
	if c == nil {
		return ""
	}
	sb := new(strings.Builder)
	for i, s := range c.Sections {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler. It is equivalent to
// String.
func (c *Conf) MarshalText() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing any
// sections in c.
func (c *Conf) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// Get returns the value of the first entry whose key equals key.
// Comparison is exact and case-sensitive. The second return value
// reports whether the key was found.
func (s Section) Get(key string) (string, bool) {
	for _, e := range s.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// AddSection appends a new section with the given name and entries.
// No uniqueness check is made: an existing section with the same name
// is left alone rather than merged.
func (c *Conf) AddSection(name string, entries []Entry) {
	c.Sections = append(c.Sections, Section{Name: name, Entries: entries})
}

// SectionNames returns the names of all sections in order, including
// duplicates.
func (c *Conf) SectionNames() []string {
	if c == nil || len(c.Sections) == 0 {
		return nil
	}
	names := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		names[i] = s.Name
	}
	return names
}
