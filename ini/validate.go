// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidSection reports whether a string can be used as a section name in
// an INI file.
func IsValidSection(name string) bool {
	if name == "" {
		// Special case: global section.
		return true
	}
	return !strings.ContainsAny(name, "]\r\n")
}

// IsValidKey reports whether a string can be used as a field name in an INI
// file that uses the given punctuation. Nil options are treated identically
// as passing the zero value.
func IsValidKey(key string, opts *Options) bool {
	if key == "" || hasSurroundingSpace(key) || strings.ContainsAny(key, "\r\n") {
		return false
	}
	sep, marker := opts.punctuation()
	if key[0] == '[' || key[0] == marker {
		return false
	}
	return strings.IndexByte(key, sep) == -1
}

// IsValidValue reports whether a string can be stored as a field's text.
func IsValidValue(value string) bool {
	return !hasSurroundingSpace(value) && !strings.ContainsAny(value, "\r\n")
}

// IsValidPunctuation reports whether c can be used as a field separator or
// comment marker: a printable ASCII character other than space and the
// section brackets.
func IsValidPunctuation(c byte) bool {
	return ' ' < c && c < 0x7f && c != '[' && c != ']'
}

func hasSurroundingSpace(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// punctuation returns the separator and marker selected by opts.
func (opts *Options) punctuation() (sep, marker byte) {
	sep, marker = DefaultFieldSeparator, DefaultCommentMarker
	if opts == nil {
		return sep, marker
	}
	if opts.FieldSeparator != 0 {
		sep = opts.FieldSeparator
	}
	if opts.CommentMarker != 0 {
		marker = opts.CommentMarker
	}
	return sep, marker
}
