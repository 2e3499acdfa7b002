// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"iter"

	"github.com/yourbase/inifile/orderedmap"
)

// A Section is an ordered collection of fields along with the comment that
// preceded its header. The zero value is an empty section.
type Section struct {
	fields  orderedmap.Map[Field]
	comment comment
	opts    Options // punctuation of the owning File
}

// Field returns the named field, appending an empty one if it does not exist.
// Field will panic if IsValidKey reports false for name under the punctuation
// of the File that holds the section.
func (s *Section) Field(name string) *Field {
	if !IsValidKey(name, &s.opts) {
		panic("Section.Field invalid key: " + name)
	}
	return s.fields.GetOrInsert(name)
}

// LookupField returns the named field if it exists.
func (s *Section) LookupField(name string) (*Field, bool) {
	if s == nil {
		return nil, false
	}
	return s.fields.Get(name)
}

// HasField reports whether the section contains the named field.
func (s *Section) HasField(name string) bool {
	_, ok := s.LookupField(name)
	return ok
}

// DeleteField removes the named field and reports whether it existed.
func (s *Section) DeleteField(name string) bool {
	return s.fields.Delete(name)
}

// Len returns the number of fields in the section.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return s.fields.Len()
}

// FieldNames returns the names of the fields in the order they were added.
func (s *Section) FieldNames() []string {
	if s == nil {
		return nil
	}
	return s.fields.Keys()
}

// Fields returns an iterator over the section's fields in order.
func (s *Section) Fields() iter.Seq2[string, *Field] {
	if s == nil {
		return func(func(string, *Field) bool) {}
	}
	return s.fields.All()
}

// Comment returns the comment that precedes the section header.
func (s *Section) Comment() string {
	if s == nil {
		return ""
	}
	return s.comment.text
}

// SetComment sets the comment that precedes the section header. A single
// trailing newline is dropped. Passing the empty string removes the comment.
func (s *Section) SetComment(c string) {
	s.comment.set(c)
}
