// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorunit

import (
	"fmt"
	"strconv"
)

// A Scaler represents a scaling factor for a number and the unit
// suffix that goes with it.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Suffix (e.g., 1 KiB => 1024)
	Suffix string  // Unit suffix ("K", "MiB", etc), may be ""
}

// Format formats val according to the given scale. A non-empty
// suffix is separated from the number by a space. For example, the
// Binary Scaler for 6050265274.7776 formats it as "5.63 GiB".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	if s.Suffix != "" {
		buf = append(buf, ' ')
		buf = append(buf, s.Suffix...)
	}
	return string(buf)
}

type factor struct {
	factor float64
	suffix string
}

// Factors are listed from largest to smallest. The last entry is
// used for values below every other factor, including zero.
var (
	iecFactors = []factor{
		{1 << 60, "EiB"},
		{1 << 50, "PiB"},
		{1 << 40, "TiB"},
		{1 << 30, "GiB"},
		{1 << 20, "MiB"},
		{1 << 10, "KiB"},
		{1, "B"},
	}
	siFactors = []factor{
		{1e18, "E"},
		{1e15, "P"},
		{1e12, "T"},
		{1e9, "G"},
		{1e6, "M"},
		{1e3, "K"},
		{1, ""},
	}
)

// ScalerFor returns the Scaler that Scale uses for val: the largest
// unit of the given class for which the scaled magnitude is at
// least 1, printed with two digits after the decimal point.
func ScalerFor(val float64, cls Class) Scaler {
	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = siFactors
	case Binary:
		factors = iecFactors
	}
	for _, f := range factors {
		if val >= f.factor {
			return Scaler{2, f.factor, f.suffix}
		}
	}
	f := factors[len(factors)-1]
	return Scaler{2, f.factor, f.suffix}
}

// Scale formats the non-negative value val with a unit suffix of the
// given class. See FormatSize and FormatNum.
func Scale(val float64, cls Class) string {
	return ScalerFor(val, cls).Format(val)
}

// FormatSize formats a non-negative number of bytes (or bytes per
// second) using binary units. For example, FormatSize(6050265274.7776)
// returns "5.63 GiB" and FormatSize(0) returns "0.00 B".
//
// The result for negative values is unspecified.
func FormatSize(n float64) string {
	return Scale(n, Binary)
}

// FormatNum formats a non-negative count or rate using decimal
// suffixes. For example, FormatNum(5800) returns "5.80 K" and
// FormatNum(0) returns "0.00". Callers append their own unit label,
// such as "IOPS".
//
// The result for negative values is unspecified.
func FormatNum(n float64) string {
	return Scale(n, Decimal)
}
