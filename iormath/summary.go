// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iormath

import (
	"fmt"
	"math"

	"github.com/hpcperf/iorperf/iorfmt"
)

// Summarize recomputes IOR's summary of each operation of t from
// t's results. Summaries are returned in the order each operation
// first appears in t.Results.
//
// The stonewalling fields are left nil, since they depend on data IOR
// does not report per result.
func Summarize(t *iorfmt.Test) []iorfmt.Summary {
	var ops []iorfmt.Access
	byOp := make(map[iorfmt.Access][]iorfmt.Result)
	for _, res := range t.Results {
		if _, ok := byOp[res.Access]; !ok {
			ops = append(ops, res.Access)
		}
		byOp[res.Access] = append(byOp[res.Access], res)
	}

	p := &t.Parameters
	numTasks := p.Nodes * p.TasksPerNode
	offset := int64(1)
	if t.Options != nil {
		numTasks = t.Options.Tasks
		if t.Options.TaskOffset != nil {
			offset = *t.Options.TaskOffset
		}
	}

	out := make([]iorfmt.Summary, 0, len(ops))
	for _, op := range ops {
		results := byOp[op]
		bw := make([]float64, len(results))
		iops := make([]float64, len(results))
		times := make([]float64, len(results))
		for i, res := range results {
			bw[i], iops[i], times[i] = res.BW, res.IOPS, res.TotalTime
		}
		bwS, iopsS, timeS := NewSample(bw), NewSample(iops), NewSample(times)

		out = append(out, iorfmt.Summary{
			Operation:              op,
			API:                    p.API,
			TestID:                 t.TestID,
			ReferenceNumber:        p.Refnum,
			SegmentCount:           p.SegmentCount,
			BlockSize:              p.BlockSize,
			TransferSize:           p.TransferSize,
			NumTasks:               numTasks,
			TasksPerNode:           p.TasksPerNode,
			Repetitions:            p.Repetitions,
			FilePerProc:            p.FilePerProc,
			ReorderTasks:           p.ReorderTasks,
			TaskPerNodeOffset:      offset,
			ReorderTasksRandom:     p.ReorderTasksRandom,
			ReorderTasksRandomSeed: p.ReorderTasksRandomSeed,
			BWMax:                  bwS.Max(),
			BWMin:                  bwS.Min(),
			BWMean:                 bwS.Mean(),
			BWStd:                  bwS.StdDev(),
			OpsMax:                 iopsS.Max(),
			OpsMin:                 iopsS.Min(),
			OpsMean:                iopsS.Mean(),
			OpsSD:                  iopsS.StdDev(),
			MeanTime:               timeS.Mean(),
			XSize:                  p.BlockSize * p.SegmentCount * numTasks,
		})
	}
	return out
}

// A Mismatch is a warning that a summary IOR reported disagrees with
// the summary recomputed from the test's results.
type Mismatch struct {
	TestID    int64
	Operation iorfmt.Access

	// Key is the canonical key of the summary field, such as
	// "bw_mean_bytes". It is "" if IOR reported a summary for an
	// operation with no results, or vice versa.
	Key string

	Reported, Computed float64
}

func (m *Mismatch) Error() string {
	switch {
	case m.Key != "":
		return fmt.Sprintf("test %d %s: reported %s %v, computed %v", m.TestID, m.Operation, m.Key, m.Reported, m.Computed)
	case math.IsNaN(m.Computed):
		return fmt.Sprintf("test %d %s: summary reported with no results", m.TestID, m.Operation)
	}
	return fmt.Sprintf("test %d %s: results with no reported summary", m.TestID, m.Operation)
}

type summaryKey struct {
	test int64
	op   iorfmt.Access
}

// Check compares the summary reported in run against the summary
// recomputed from the results of each test. Measured values that
// differ by more than a relative tolerance tol are returned as
// *Mismatch warnings. IOR rounds the values it reports, so tol should
// be somewhat larger than that rounding.
//
// If run has no summary, as when IOR did not finish, Check returns
// nil.
func Check(run *iorfmt.Run, tol float64) []error {
	if run.Summary == nil {
		return nil
	}

	computed := make(map[summaryKey]iorfmt.Summary)
	var order []summaryKey
	for i := range run.Tests {
		for _, s := range Summarize(&run.Tests[i]) {
			k := summaryKey{s.TestID, s.Operation}
			computed[k] = s
			order = append(order, k)
		}
	}

	var warnings []error
	reported := make(map[summaryKey]bool)
	for _, rep := range run.Summary {
		k := summaryKey{rep.TestID, rep.Operation}
		reported[k] = true
		comp, ok := computed[k]
		if !ok {
			warnings = append(warnings, &Mismatch{TestID: k.test, Operation: k.op, Computed: math.NaN()})
			continue
		}
		for _, f := range []struct {
			key      string
			rep, got float64
		}{
			{"bw_max_bytes", rep.BWMax, comp.BWMax},
			{"bw_min_bytes", rep.BWMin, comp.BWMin},
			{"bw_mean_bytes", rep.BWMean, comp.BWMean},
			{"bw_std_bytes", rep.BWStd, comp.BWStd},
			{"ops_max", rep.OpsMax, comp.OpsMax},
			{"ops_min", rep.OpsMin, comp.OpsMin},
			{"ops_mean", rep.OpsMean, comp.OpsMean},
			{"ops_sd", rep.OpsSD, comp.OpsSD},
			{"mean_time", rep.MeanTime, comp.MeanTime},
			{"xsize_bytes", float64(rep.XSize), float64(comp.XSize)},
		} {
			if !within(f.rep, f.got, tol) {
				warnings = append(warnings, &Mismatch{k.test, k.op, f.key, f.rep, f.got})
			}
		}
	}
	for _, k := range order {
		if !reported[k] {
			warnings = append(warnings, &Mismatch{TestID: k.test, Operation: k.op, Reported: math.NaN()})
		}
	}
	return warnings
}

// within reports whether a and b are within relative tolerance tol of
// each other.
func within(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}
