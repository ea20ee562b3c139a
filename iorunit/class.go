// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iorunit converts IOR size quantities to bytes and formats
// numbers in human-readable binary or decimal units.
package iorunit

import (
	"fmt"
	"strings"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values should be scaled by powers of 1000,
	// using the suffixes "K", "M", "G", and so on. IOPS and times
	// are Decimal.
	Decimal Class = iota
	// Binary indicates values should be scaled by powers of 1024,
	// using IEC suffixes such as "KiB" and "MiB". Sizes and
	// bandwidths are Binary.
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of an IOR unit such as "B/s" or "ops/s".
// A unit whose numerator is a size unit accepted by ParseSize, such
// as "B", "bytes", or "MiB", is Binary. Every other unit, including
// "", is Decimal.
func ClassOf(unit string) Class {
	num, _, _ := strings.Cut(unit, "/")
	for _, word := range strings.Fields(num) {
		if _, ok := unitShift(word); ok {
			return Binary
		}
	}
	return Decimal
}
