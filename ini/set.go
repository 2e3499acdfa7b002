// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"zombiezen.com/go/log"
)

// Load parses the INI file at the given path. Nil options are treated
// identically as passing the zero value.
func Load(ctx context.Context, path string, opts *Options) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load ini file: %w", err)
	}
	defer r.Close() // Close errors irrelevant.
	f, err := Parse(r, opts)
	if err != nil {
		return nil, fmt.Errorf("load ini file: %s: %w", path, err)
	}
	log.Debugf(ctx, "Loaded %s (%d sections)", path, f.Len())
	return f, nil
}

// Save writes f to the given path in INI format, creating or truncating it.
func (f *File) Save(ctx context.Context, path string) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save ini file: %w", err)
	}
	defer func() {
		if closeErr := w.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("save ini file: %w", closeErr)
		}
	}()
	if err := f.Encode(w); err != nil {
		return fmt.Errorf("save ini file: %s: %w", path, err)
	}
	log.Debugf(ctx, "Saved %s (%d sections)", path, f.Len())
	return nil
}

// FileSet is a list of files to obtain configuration from in descending order
// of precedence. Nil elements are treated as empty files.
type FileSet []*File

// LoadFiles parses the files at the given paths as INI and returns a FileSet.
// If the returned error is nil, the returned file set's length will be the same
// as the number of arguments. LoadFiles will stop on the first error, but
// ignores missing file errors, instead filling the corresponding element of the
// set with a nil *File.
func LoadFiles(ctx context.Context, opts *Options, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := Load(ctx, p, opts)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf(ctx, "Skipping missing %s", p)
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("load ini files: %w", err)
		}
		fset = append(fset, f)
	}
	return fset, nil
}

// Lookup returns the named field from the first file that defines it.
func (fset FileSet) Lookup(section, key string) (*Field, bool) {
	for _, f := range fset {
		s, ok := f.LookupSection(section)
		if !ok {
			continue
		}
		if field, ok := s.LookupField(key); ok {
			return field, true
		}
	}
	return nil, false
}

// Get returns the text of the named field from the first file that defines
// it. Passing an empty section name searches for fields outside any section.
func (fset FileSet) Get(section, key string) (_ string, ok bool) {
	field, ok := fset.Lookup(section, key)
	if !ok {
		return "", false
	}
	return field.String(), true
}

// HasSection reports whether any file in the set has the named section.
func (fset FileSet) HasSection(name string) bool {
	for _, f := range fset {
		if f.HasSection(name) {
			return true
		}
	}
	return false
}

// SectionNames returns the names of sections in any file, in the order they
// are first seen walking the set from highest to lowest precedence.
func (fset FileSet) SectionNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, f := range fset {
		for _, name := range f.SectionNames() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
