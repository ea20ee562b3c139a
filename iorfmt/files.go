// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Record is either a *Run or a *FieldError.
type Record interface {
	Pos() (fileName, path string)
}

// A Files reads IOR results from a sequence of input files. Each file
// holds one IOR JSON document.
//
// Each Run's File field is set to the file name directly from Paths,
// except that duplicate strings are disambiguated by appending "#N".
// If AllowLabels is true, then entries in Paths may be of the form
// label=path, and the label part is used instead (without any
// disambiguation).
type Files struct {
	// Paths is the list of file names to read in.
	//
	// If AllowLabels is set, these strings may be of the form
	// label=path.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool

	// Decoder configures how each document is decoded.
	Decoder Decoder

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []input

	rec Record
	err error
}

type input struct {
	path      string
	label     string
	isStdin   bool
	isLabeled bool
}

// init does first-use initialization of f.
func (f *Files) init() {
	// Set f.inputs to a non-nil slice to indicate initialization
	// has happened.
	f.inputs = []input{}

	pathCount := make(map[string]int)
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, input{"-", "-", true, false})
	}
	for _, path := range f.Paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}

		isStdin := f.AllowStdin && path == "-"
		f.inputs = append(f.inputs, input{path, label, isStdin, isLabeled})
	}

	// If the same path is given multiple times, disambiguate its
	// label so the Runs can be told apart.
	pathI := make(map[string]int)
	for i := range f.inputs {
		inp := &f.inputs[i]
		if inp.isLabeled || pathCount[inp.path] <= 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
}

// Scan advances to the next document in the sequence of files and
// reports whether one was read. The caller should use the Result
// method to get the result. A document that cannot be parsed is
// returned by Result as a *FieldError, and scanning may continue. If
// Scan reaches the end of the file sequence, or if an I/O error
// occurs, it returns false. In this case, the caller should use the
// Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		f.rec = nil
		return false
	}

	inp := f.inputs[0]
	f.inputs = f.inputs[1:]

	data, err := readInput(inp)
	if err != nil {
		f.err = err
		f.rec = nil
		return false
	}
	run, err := f.Decoder.Decode(data)
	if err != nil {
		var fe *FieldError
		if !errors.As(err, &fe) {
			fe = &FieldError{Err: err}
		}
		fe.FileName = inp.label
		f.rec = fe
		return true
	}
	run.File = inp.label
	f.rec = run
	return true
}

func readInput(inp input) ([]byte, error) {
	if inp.isStdin {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inp.path)
}

// Result returns the record that was just read by Scan. This is
// either a *Run or a *FieldError indicating a document that could not
// be parsed. Parse errors are not fatal; the caller can continue to
// call Scan.
func (f *Files) Result() Record {
	return f.rec
}

// Err returns the I/O error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}
