// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration.
package envvar

import (
	"fmt"
	"os"

	"github.com/yourbase/inifile/ini"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. It accepts the
// same spellings as ini.ParseBool. If it is unset or not recognized, then it
// returns false.
func Bool(key string) bool {
	b, ok := ini.ParseBool(os.Getenv(key))
	return ok && b
}

// Char returns the value of an environment variable that holds a single
// character accepted by ini.IsValidPunctuation, such as a separator. If it is
// empty or unset, it returns the default value.
func Char(key string, defaultValue byte) (byte, error) {
	v := os.Getenv(key)
	switch {
	case v == "":
		return defaultValue, nil
	case len(v) != 1 || !ini.IsValidPunctuation(v[0]):
		return 0, fmt.Errorf("%s=%q: want a single printable ASCII character other than space, '[' or ']'", key, v)
	default:
		return v[0], nil
	}
}
