// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for a minimal INI file format.
See https://en.wikipedia.org/wiki/INI_file.

This package is designed for read-modify-write scenarios: sections and
fields keep the order in which they first appeared, and comments attached to
them are written back out.

Syntax

An INI file is a sequence of lines. Leading and trailing spaces, tabs and
carriage returns are ignored, and blank lines carry no meaning.

A field is a name and a value separated by an equals sign ('='):

	name=value

Whitespace before the separator and after it is dropped. Everything after
the first separator is the value, so values may contain further equals
signs. There is no quoting, escaping or line continuation.

Fields may be grouped into sections. A section starts with its name in
square brackets on its own line and ends at the next section:

	[section]
	key1=value1
	key2=value2

Fields that appear before any section header belong to the unnamed section,
identified by the empty string ("").

A line whose first character is a semicolon (';') is a comment. Consecutive
comment lines form a block that is attached to the next section header or
field. Inline comments are not supported.

Both the separator and the comment marker can be changed per File with
Options.

Repeated names

A section or field name that appears again replaces the earlier value but
keeps the position where the name was first seen.

Valid names

Names and values set through the API must survive a round trip through
Encode and Decode. File.Set, File.Section, Section.Field and Field.SetString
panic when IsValidSection, IsValidKey or IsValidValue reject their input.
Decode accepts any name it can split from a line, including the empty field
name.
*/
package ini
