// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/yourbase/inifile/orderedmap"
)

// Default punctuation.
const (
	DefaultFieldSeparator = '='
	DefaultCommentMarker  = ';'
)

// Options holds the punctuation a File uses. Zero fields select the defaults.
type Options struct {
	// FieldSeparator separates a field's name from its value.
	// If zero, DefaultFieldSeparator is used.
	FieldSeparator byte

	// CommentMarker starts a comment line.
	// If zero, DefaultCommentMarker is used.
	CommentMarker byte
}

// A File is an ordered collection of sections. The zero value is an empty
// file that uses the default punctuation.
//
// A File is not safe for concurrent use. Callers that share a File between
// goroutines must guard it with a lock.
type File struct {
	sections orderedmap.Map[Section]
	sep      byte
	marker   byte
}

// New returns an empty File. Nil options are treated identically as passing
// the zero value.
func New(opts *Options) *File {
	f := new(File)
	if opts != nil {
		f.sep = opts.FieldSeparator
		f.marker = opts.CommentMarker
	}
	return f
}

// Parse parses an INI file. Nil options are treated identically as passing
// the zero value.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader, opts *Options) (*File, error) {
	f := New(opts)
	if err := f.Decode(r); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseString parses an INI file held in a string.
func ParseString(s string, opts *Options) (*File, error) {
	return Parse(strings.NewReader(s), opts)
}

// FieldSeparator returns the character that separates field names from values.
func (f *File) FieldSeparator() byte {
	if f == nil || f.sep == 0 {
		return DefaultFieldSeparator
	}
	return f.sep
}

// CommentMarker returns the character that starts a comment line.
func (f *File) CommentMarker() byte {
	if f == nil || f.marker == 0 {
		return DefaultCommentMarker
	}
	return f.marker
}

// Decode replaces the contents of f with the INI data read from r.
//
// Decoding stops at the first malformed line and returns a *ParseError. The
// contents of f are unspecified after an error. Decoding also stops without
// error if r returns an error, in which case f holds the lines read so far.
func (f *File) Decode(r io.Reader) error {
	f.sections.Clear()
	sep := f.FieldSeparator()
	marker := f.CommentMarker()

	br := bufio.NewReader(r)
	var curr *Section
	var pending strings.Builder
	for lineno := 1; ; lineno++ {
		raw, err := br.ReadString('\n')
		if raw == "" && err != nil {
			return nil
		}
		line := strings.Trim(raw, " \t\r\n")
		switch {
		case line == "":
		case line[0] == marker:
			pending.WriteString(line[1:])
			pending.WriteByte('\n')
		case line[0] == '[':
			end := strings.IndexByte(line, ']')
			switch {
			case end == -1:
				return &ParseError{Line: lineno, Msg: "section not closed"}
			case end == 1:
				return &ParseError{Line: lineno, Msg: "section name is empty"}
			case end != len(line)-1:
				return &ParseError{Line: lineno, Msg: "no end of line after section"}
			}
			curr = f.section(line[1:end])
			if pending.Len() > 0 {
				curr.comment.set(pending.String())
				pending.Reset()
			}
		default:
			if curr == nil {
				curr = f.section("")
			}
			i := strings.IndexByte(line, sep)
			if i == -1 {
				return &ParseError{Line: lineno, Msg: fmt.Sprintf("no '%c' found", sep)}
			}
			field := curr.fields.GetOrInsert(strings.TrimRight(line[:i], " \t"))
			field.value = strings.TrimLeft(line[i+1:], " \t")
			if pending.Len() > 0 {
				field.comment.set(pending.String())
				pending.Reset()
			}
		}
		if err != nil {
			return nil
		}
	}
}

// DecodeString replaces the contents of f with the INI data in s.
func (f *File) DecodeString(s string) error {
	return f.Decode(strings.NewReader(s))
}

// UnmarshalText parses the INI data, replacing any sections in f.
func (f *File) UnmarshalText(data []byte) error {
	return f.Decode(bytes.NewReader(data))
}

// Encode writes f to w in INI format, including comments. Sections are
// separated by a blank line. Encode does not modify f.
func (f *File) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	sep := f.FieldSeparator()
	marker := f.CommentMarker()
	wrote := false
	for name, s := range f.Sections() {
		if wrote {
			bw.WriteByte('\n')
		}
		s.comment.render(bw, marker)
		if name != "" {
			bw.WriteByte('[')
			bw.WriteString(name)
			bw.WriteString("]\n")
		}
		for key, field := range s.fields.All() {
			field.comment.render(bw, marker)
			bw.WriteString(key)
			bw.WriteByte(sep)
			bw.WriteString(field.value)
			bw.WriteByte('\n')
		}
		if name != "" || !s.comment.isEmpty() || s.fields.Len() > 0 {
			wrote = true
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode ini file: %w", err)
	}
	return nil
}

// EncodeString returns f in INI format.
func (f *File) EncodeString() string {
	sb := new(strings.Builder)
	f.Encode(sb) // strings.Builder never fails.
	return sb.String()
}

// MarshalText serializes the file in INI format, including comments.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	buf := new(bytes.Buffer)
	if err := f.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Section returns the named section, appending an empty one to the end of
// the file if it does not exist. Section("") is the unnamed section that holds
// fields that appear before any header. Section will panic if
// IsValidSection(name) reports false.
func (f *File) Section(name string) *Section {
	if !IsValidSection(name) {
		panic("File.Section invalid section: " + name)
	}
	return f.section(name)
}

// section is Section without validation. Decoded names are accepted as is.
func (f *File) section(name string) *Section {
	s := f.sections.GetOrInsert(name)
	s.opts = f.options()
	return s
}

// options returns the punctuation of f with defaults filled in.
func (f *File) options() Options {
	return Options{
		FieldSeparator: f.FieldSeparator(),
		CommentMarker:  f.CommentMarker(),
	}
}

// LookupSection returns the named section if it exists.
func (f *File) LookupSection(name string) (*Section, bool) {
	if f == nil {
		return nil, false
	}
	return f.sections.Get(name)
}

// HasSection reports whether f contains the named section.
func (f *File) HasSection(name string) bool {
	_, ok := f.LookupSection(name)
	return ok
}

// DeleteSection removes the named section along with its fields and reports
// whether it existed.
func (f *File) DeleteSection(name string) bool {
	if f == nil {
		return false
	}
	return f.sections.Delete(name)
}

// Len returns the number of sections in f.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return f.sections.Len()
}

// SectionNames returns the names of the sections in f in file order.
func (f *File) SectionNames() []string {
	if f == nil {
		return nil
	}
	return f.sections.Keys()
}

// Sections returns an iterator over the sections of f in file order.
func (f *File) Sections() iter.Seq2[string, *Section] {
	if f == nil {
		return func(func(string, *Section) bool) {}
	}
	return f.sections.All()
}

// Get returns the text of the named field. ok is false if either the section
// or the field does not exist.
func (f *File) Get(section, key string) (_ string, ok bool) {
	s, ok := f.LookupSection(section)
	if !ok {
		return "", false
	}
	field, ok := s.LookupField(key)
	if !ok {
		return "", false
	}
	return field.value, true
}

// Set sets the text of the named field, creating the section and field at
// the end of their containers if necessary. Set leaves comments untouched.
// Set will panic if IsValidSection(section), IsValidKey(key) or
// IsValidValue(value) report false.
func (f *File) Set(section, key, value string) {
	if !IsValidSection(section) {
		panic("File.Set invalid section: " + section)
	}
	opts := f.options()
	if !IsValidKey(key, &opts) {
		panic("File.Set invalid key: " + key)
	}
	if !IsValidValue(value) {
		panic("File.Set invalid value: " + value)
	}
	f.section(section).fields.GetOrInsert(key).value = value
}
