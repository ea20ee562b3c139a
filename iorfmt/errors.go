// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"errors"
	"fmt"

	"github.com/hpcperf/iorperf/iorunit"
)

// Error kinds returned by Parse and Coerce. Every error carries
// exactly one of these kinds; use errors.Is to test for them.
var (
	// ErrMalformedInput indicates the input is not valid JSON.
	ErrMalformedInput = errors.New("malformed input")

	// ErrSchemaMismatch indicates a required field is missing or
	// a value has an unexpected shape or type.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrInvalidSizeFormat indicates a size string or implicit-unit
	// value could not be converted to bytes.
	ErrInvalidSizeFormat = iorunit.ErrInvalidSizeFormat

	// ErrInvalidEnumValue indicates a categorical value has no
	// matching member.
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

// A FieldError records an error decoding a particular field of an
// IOR document.
type FieldError struct {
	// FileName is the input label, or "" if the document was not
	// read through Files.
	FileName string

	// Path is the canonical path of the field, such as
	// "tests[0].results[1].access". It is "" for errors that
	// concern the whole document.
	Path string

	Err error
}

// Pos returns the input label and field path of e.
func (e *FieldError) Pos() (fileName, path string) {
	return e.FileName, e.Path
}

func (e *FieldError) Error() string {
	switch {
	case e.FileName != "" && e.Path != "":
		return fmt.Sprintf("%s: %s: %v", e.FileName, e.Path, e.Err)
	case e.FileName != "":
		return fmt.Sprintf("%s: %v", e.FileName, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// mismatch returns an ErrSchemaMismatch error with the given message.
func mismatch(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, fmt.Sprintf(format, args...))
}
