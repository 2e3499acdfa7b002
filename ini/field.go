// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"strconv"
	"strings"
)

// A Field is a value in a section along with the comment that preceded it.
// The zero value is an empty field with no comment.
type Field struct {
	value   string
	comment comment
}

// String returns the field's raw text.
func (f *Field) String() string {
	if f == nil {
		return ""
	}
	return f.value
}

// Int parses the field as a base-10 integer.
func (f *Field) Int() (int, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(f.String()), 10, 0)
	if err != nil {
		return 0, &ConversionError{Value: f.String(), Type: "int"}
	}
	return int(i), nil
}

// Int64 parses the field as a base-10 64-bit integer.
func (f *Field) Int64() (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(f.String()), 10, 64)
	if err != nil {
		return 0, &ConversionError{Value: f.String(), Type: "int"}
	}
	return i, nil
}

// Uint parses the field as a base-10 unsigned integer.
func (f *Field) Uint() (uint, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(f.String()), 10, 0)
	if err != nil {
		return 0, &ConversionError{Value: f.String(), Type: "uint"}
	}
	return uint(u), nil
}

// Float64 parses the field as a decimal floating-point number. The spellings
// of infinity and NaN written by SetFloat64 are accepted, ignoring case.
// Hexadecimal notation is not.
func (f *Field) Float64() (float64, error) {
	x, err := parseFloat(f.String(), 64)
	if err != nil {
		return 0, &ConversionError{Value: f.String(), Type: "float"}
	}
	return x, nil
}

// Float32 parses the field as a decimal floating-point number, rounded to
// single precision.
func (f *Field) Float32() (float32, error) {
	x, err := parseFloat(f.String(), 32)
	if err != nil {
		return 0, &ConversionError{Value: f.String(), Type: "float"}
	}
	return float32(x), nil
}

func parseFloat(s string, bitSize int) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, bitSize)
}

// Bool parses the field with ParseBool.
func (f *Field) Bool() (bool, error) {
	b, ok := ParseBool(f.String())
	if !ok {
		return false, &ConversionError{Value: f.String(), Type: "bool"}
	}
	return b, nil
}

// ParseBool interprets s as a boolean. It accepts "true", "yes", "y" and "1"
// as true and "false", "no", "n" and "0" as false, ignoring case. ok is false
// for any other string.
func ParseBool(s string) (b bool, ok bool) {
	for _, t := range []string{"true", "yes", "y", "1"} {
		if strings.EqualFold(s, t) {
			return true, true
		}
	}
	for _, f := range []string{"false", "no", "n", "0"} {
		if strings.EqualFold(s, f) {
			return false, true
		}
	}
	return false, false
}

// SetString sets the field's text to s verbatim. SetString will panic if
// IsValidValue(s) reports false.
func (f *Field) SetString(s string) {
	if !IsValidValue(s) {
		panic("Field.SetString invalid value: " + s)
	}
	f.value = s
}

// SetInt sets the field to the decimal representation of i.
func (f *Field) SetInt(i int) {
	f.value = strconv.Itoa(i)
}

// SetInt64 sets the field to the decimal representation of i.
func (f *Field) SetInt64(i int64) {
	f.value = strconv.FormatInt(i, 10)
}

// SetUint sets the field to the decimal representation of u.
func (f *Field) SetUint(u uint) {
	f.value = strconv.FormatUint(uint64(u), 10)
}

// SetFloat64 sets the field to the shortest representation of x that
// parses back to the same value.
func (f *Field) SetFloat64(x float64) {
	f.value = strconv.FormatFloat(x, 'g', -1, 64)
}

// SetFloat32 is like SetFloat64 for single-precision values.
func (f *Field) SetFloat32(x float32) {
	f.value = strconv.FormatFloat(float64(x), 'g', -1, 32)
}

// SetBool sets the field to "true" or "false".
func (f *Field) SetBool(b bool) {
	f.value = strconv.FormatBool(b)
}

// Comment returns the comment attached to the field, without comment markers.
// Multiple lines are separated by newlines.
func (f *Field) Comment() string {
	if f == nil {
		return ""
	}
	return f.comment.text
}

// SetComment attaches a comment to the field. A single trailing newline is
// dropped. Passing the empty string removes the comment.
func (f *Field) SetComment(s string) {
	f.comment.set(s)
}
