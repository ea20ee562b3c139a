// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorunit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSizeFormat is the error kind of every size that could not
// be converted to a byte count. Use errors.Is to test for it.
var ErrInvalidSizeFormat = errors.New("invalid size format")

// A SizeError records a size that could not be converted to bytes.
type SizeError struct {
	Input string
	Msg   string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidSizeFormat, e.Input, e.Msg)
}

// Unwrap returns ErrInvalidSizeFormat.
func (e *SizeError) Unwrap() error {
	return ErrInvalidSizeFormat
}

// binaryShift maps a lower-case binary prefix to its power of two.
var binaryShift = map[string]uint{
	"":   0,
	"ki": 10,
	"mi": 20,
	"gi": 30,
	"ti": 40,
	"pi": 50,
	"ei": 60,
}

// ParseSize converts an IOR size string such as "4 KiB", "1MiB",
// "4096 bytes" or "512" into a number of bytes.
//
// The unit is a binary prefix (Ki, Mi, Gi, Ti, Pi, Ei) or no prefix,
// optionally followed by "B". The words "byte" and "bytes" are also
// accepted. Units are case-insensitive and may be separated from the
// magnitude by white space. Integer magnitudes convert exactly;
// fractional results round to the nearest byte, with ties to even.
func ParseSize(s string) (int64, error) {
	str := strings.TrimSpace(s)
	end := magnitudeEnd(str)
	if end == 0 {
		return 0, &SizeError{s, "missing magnitude"}
	}
	mag, unit := str[:end], strings.TrimSpace(str[end:])

	shift, ok := unitShift(unit)
	if !ok {
		return 0, &SizeError{s, fmt.Sprintf("unknown unit %q", unit)}
	}

	if n, err := strconv.ParseInt(mag, 10, 64); err == nil {
		if n < 0 {
			return 0, &SizeError{s, "negative size"}
		}
		if shift > 0 && n > math.MaxInt64>>shift {
			return 0, &SizeError{s, "size overflows int64"}
		}
		return n << shift, nil
	}
	f, err := strconv.ParseFloat(mag, 64)
	if err != nil {
		return 0, &SizeError{s, fmt.Sprintf("bad magnitude %q", mag)}
	}
	n, err := Bytes(f, 1<<shift)
	if err != nil {
		return 0, &SizeError{s, err.(*SizeError).Msg}
	}
	return n, nil
}

// magnitudeEnd returns the length of the leading number in s.
// An exponent marker is only consumed when a digit follows it, so
// that "4EiB" splits as "4" and "EiB".
func magnitudeEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		digits = digits || isDigit(s[i])
		i++
	}
	if !digits {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func unitShift(unit string) (uint, bool) {
	u := strings.ToLower(unit)
	switch u {
	case "", "b", "byte", "bytes":
		return 0, true
	}
	if len(u) > 1 && strings.HasSuffix(u, "b") {
		u = u[:len(u)-1]
	}
	if u == "" {
		return 0, false
	}
	shift, ok := binaryShift[u]
	return shift, ok
}

// Bytes converts magnitude, expressed in units of factor bytes, to a
// whole number of bytes. The result is rounded to the nearest byte,
// with ties to even.
func Bytes(magnitude float64, factor int64) (int64, error) {
	v := magnitude * float64(factor)
	input := strconv.FormatFloat(magnitude, 'g', -1, 64)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, &SizeError{input, "not a finite number"}
	case v < 0:
		return 0, &SizeError{input, "negative size"}
	}
	v = math.RoundToEven(v)
	if v >= math.MaxInt64 {
		return 0, &SizeError{input, "size overflows int64"}
	}
	return int64(v), nil
}

// SplitUnitSuffix reports the implicit unit carried by an IOR field
// name, such as "bwMiB", "blockKiB" or "bwMaxMIB". It returns the
// name without its unit suffix and the number of bytes in one unit.
// Names without a unit suffix are returned unchanged with a factor
// of 1.
//
// The suffix must start with an upper-case prefix letter and end in
// "B", so that normalized names such as "bw_bytes" are never
// rescaled.
func SplitUnitSuffix(name string) (stem string, factor int64) {
	if len(name) <= 3 {
		return name, 1
	}
	suffix := name[len(name)-3:]
	if suffix[2] != 'B' || (suffix[1] != 'i' && suffix[1] != 'I') {
		return name, 1
	}
	var shift uint
	switch suffix[0] {
	case 'K':
		shift = 10
	case 'M':
		shift = 20
	case 'G':
		shift = 30
	case 'T':
		shift = 40
	case 'P':
		shift = 50
	case 'E':
		shift = 60
	default:
		return name, 1
	}
	return name[:len(name)-3], 1 << shift
}
