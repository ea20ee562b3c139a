// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iormath recomputes IOR's per-operation summary statistics
// from the individual results of a test and checks them against the
// summary IOR reported.
//
// Like IOR, this package describes a set of repetitions by its
// minimum, maximum, mean, and population standard deviation. Check
// reports disagreements as a list of warnings, captured as an []error
// value. These aren't errors that prevent analysis, but should be
// presented to the user along with the results.
package iormath

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one operation.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. It sorts
// values in place.
func NewSample(values []float64) *Sample {
	// Sort values for fast order statistics.
	sort.Float64s(values)
	return &Sample{values}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Min returns the smallest value in s, or NaN if s is empty.
func (s *Sample) Min() float64 {
	min, _ := s.sample().Bounds()
	return min
}

// Max returns the largest value in s, or NaN if s is empty.
func (s *Sample) Max() float64 {
	_, max := s.sample().Bounds()
	return max
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s *Sample) Mean() float64 {
	return s.sample().Mean()
}

// StdDev returns the population standard deviation of s, which is
// what IOR reports. It is 0 for a single value and NaN if s is empty.
func (s *Sample) StdDev() float64 {
	n := float64(len(s.Values))
	if n == 0 {
		return math.NaN()
	}
	// stats.Sample.Variance is the sample variance.
	return math.Sqrt(s.sample().Variance() * (n - 1) / n)
}
