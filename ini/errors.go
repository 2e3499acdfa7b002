// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "fmt"

// A ParseError describes malformed INI input.
type ParseError struct {
	Line int // 1-based
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ini: line %d: %s", e.Line, e.Msg)
}

// A ConversionError is returned by the typed accessors of Field when the
// stored text cannot be read as the requested type.
type ConversionError struct {
	Value string
	Type  string // "int", "uint", "float" or "bool"
}

func (e *ConversionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("ini: field cannot be converted: %q", e.Value)
	}
	article := "a"
	switch e.Type[0] {
	case 'a', 'e', 'i', 'o', 'u':
		article = "an"
	}
	return fmt.Sprintf("ini: field is not %s %s: %q", article, e.Type, e.Value)
}
