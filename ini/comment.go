// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"strings"
)

// comment is a block of comment lines joined by newlines.
type comment struct {
	text string
}

// set stores s, dropping a single trailing newline.
func (c *comment) set(s string) {
	c.text = strings.TrimSuffix(s, "\n")
}

func (c comment) isEmpty() bool {
	return c.text == ""
}

// render writes each line of the comment prefixed with marker.
func (c comment) render(w *bufio.Writer, marker byte) {
	if c.isEmpty() {
		return
	}
	text := c.text
	for {
		line, rest, more := strings.Cut(text, "\n")
		w.WriteByte(marker)
		w.WriteString(line)
		w.WriteByte('\n')
		if !more {
			return
		}
		text = rest
	}
}
