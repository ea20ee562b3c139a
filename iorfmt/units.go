// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

// units gives the unit of each measured field of Result and Summary,
// by canonical key.
var units = map[string]string{
	"bw_bytes":                "B/s",
	"bw_max_bytes":            "B/s",
	"bw_min_bytes":            "B/s",
	"bw_mean_bytes":           "B/s",
	"bw_std_bytes":            "B/s",
	"stonewall_bw_mean_bytes": "B/s",
	"block_bytes":             "B",
	"xfer_bytes":              "B",
	"xsize_bytes":             "B",
	"iops":                    "ops/s",
	"ops_max":                 "ops/s",
	"ops_min":                 "ops/s",
	"ops_mean":                "ops/s",
	"ops_sd":                  "ops/s",
	"latency":                 "sec",
	"open_time":               "sec",
	"wr_rd_time":              "sec",
	"close_time":              "sec",
	"total_time":              "sec",
	"mean_time":               "sec",
	"stonewall_time":          "sec",
}

// UnitOf returns the unit of the measurement with the given canonical
// key, such as "B/s" for "bw_bytes" or "ops/s" for "iops". It returns
// "" for keys that are not measurements. Pass the unit to
// iorunit.ClassOf to choose between binary and decimal scaling.
func UnitOf(key string) string {
	return units[key]
}
