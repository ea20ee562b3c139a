// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iortab presents IOR results as tables.
//
// Results flattens a Run into a go-gg table with one row per
// operation result, suitable for grouping, filtering, and aggregation
// with the go-gg table and ggstat packages. Fprint uses this to print
// a per-operation summary.
package iortab

import (
	"io"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/hpcperf/iorperf/iorfmt"
	"github.com/hpcperf/iorperf/iormath"
	"github.com/hpcperf/iorperf/iorunit"
)

// Results returns a table with one row for each result of each test
// in run, in order. The columns are named by the canonical keys of
// the corresponding fields: "test_id" ([]int64), "access"
// ([]iorfmt.Access), "bw_bytes", "iops", "latency" ([]float64),
// "block_bytes", "xfer_bytes" ([]int64), and "open_time",
// "wr_rd_time", "close_time", "total_time" ([]float64).
func Results(run *iorfmt.Run) *table.Table {
	n := 0
	for _, test := range run.Tests {
		n += len(test.Results)
	}
	var (
		testIDs   = make([]int64, 0, n)
		access    = make([]iorfmt.Access, 0, n)
		bw        = make([]float64, 0, n)
		iops      = make([]float64, 0, n)
		latency   = make([]float64, 0, n)
		block     = make([]int64, 0, n)
		xfer      = make([]int64, 0, n)
		openTime  = make([]float64, 0, n)
		wrRdTime  = make([]float64, 0, n)
		closeTime = make([]float64, 0, n)
		totalTime = make([]float64, 0, n)
	)
	for _, test := range run.Tests {
		for _, res := range test.Results {
			testIDs = append(testIDs, test.TestID)
			access = append(access, res.Access)
			bw = append(bw, res.BW)
			iops = append(iops, res.IOPS)
			latency = append(latency, res.Latency)
			block = append(block, res.BlockBytes)
			xfer = append(xfer, res.XferBytes)
			openTime = append(openTime, res.OpenTime)
			wrRdTime = append(wrRdTime, res.WrRdTime)
			closeTime = append(closeTime, res.CloseTime)
			totalTime = append(totalTime, res.TotalTime)
		}
	}

	return new(table.Builder).
		Add("test_id", testIDs).
		Add("access", access).
		Add("bw_bytes", bw).
		Add("iops", iops).
		Add("latency", latency).
		Add("block_bytes", block).
		Add("xfer_bytes", xfer).
		Add("open_time", openTime).
		Add("wr_rd_time", wrRdTime).
		Add("close_time", closeTime).
		Add("total_time", totalTime).
		Done()
}

// Fprint prints a summary of each operation of each test in run to
// w: the number of repetitions, the mean, minimum, maximum, and
// standard deviation of the bandwidth, and the mean IOPS. Bandwidths
// are printed in binary units and IOPS in decimal units. Operations
// appear in the order they were run. If run has no results, Fprint
// prints nothing.
func Fprint(w io.Writer, run *iorfmt.Run) error {
	t := Results(run)
	if t.Len() == 0 {
		return nil
	}

	summary := ggstat.Agg("test_id", "access")(
		ggstat.AggCount("n"),
		ggstat.AggMean("bw_bytes", "iops"),
		ggstat.AggMin("bw_bytes"),
		ggstat.AggMax("bw_bytes"),
		aggStdDev("bw_bytes"),
	).F(t).Table(table.RootGroupID)

	col := func(agg, key string) []string {
		return formatCol(summary.MustColumn(agg+" "+key).([]float64), formatter(key))
	}
	out := new(table.Builder).
		Add("test", summary.MustColumn("test_id")).
		Add("access", summary.MustColumn("access")).
		Add("n", summary.MustColumn("n")).
		Add("mean bw", col("mean", "bw_bytes")).
		Add("min bw", col("min", "bw_bytes")).
		Add("max bw", col("max", "bw_bytes")).
		Add("sd bw", col("sd", "bw_bytes")).
		Add("mean iops", col("mean", "iops")).
		Done()
	return table.Fprint(w, out)
}

// aggStdDev returns an aggregate function that computes the
// population standard deviation of col, as IOR reports it. The
// resulting column is named "sd <col>".
func aggStdDev(col string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		sds := make([]float64, 0, len(input.Tables()))
		for _, gid := range input.Tables() {
			// NewSample sorts in place.
			xs := append([]float64(nil), input.Table(gid).MustColumn(col).([]float64)...)
			sds = append(sds, iormath.NewSample(xs).StdDev())
		}
		b.Add("sd "+col, sds)
	}
}

// formatter returns a function that formats values of the measurement
// key in its unit. Byte quantities use binary prefixes and keep any
// denominator of the unit, so bandwidths print as "5.63 GiB/s".
// Other quantities use decimal prefixes alone.
func formatter(key string) func(float64) string {
	unit := iorfmt.UnitOf(key)
	cls := iorunit.ClassOf(unit)
	var per string
	if _, denom, ok := strings.Cut(unit, "/"); ok && cls == iorunit.Binary {
		per = "/" + denom
	}
	return func(v float64) string {
		return iorunit.Scale(v, cls) + per
	}
}

func formatCol(xs []float64, format func(float64) string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = format(x)
	}
	return out
}
