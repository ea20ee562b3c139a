// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import "testing"

func TestNormalize(t *testing.T) {
	for _, test := range []struct {
		raw, want string
	}{
		// Path notation.
		{"Tests[x]->TestID", "test_id"},
		{"Parameters->testID", "test_id"},
		{"tests[0]->Results[1]->bwMiB", "bw_bytes"},

		// Camel and Pascal case.
		{"TestID", "test_id"},
		{"testID", "test_id"},
		{"StartTime", "start_time"},
		{"testFileName", "test_file_name"},
		{"deadlineForStonewall", "deadline_for_stonewall"},
		{"wrRdTime", "wr_rd_time"},
		{"taskPerNodeOffset", "task_per_node_offset"},
		{"ReferenceNumber", "reference_number"},
		{"API", "api"},
		{"refnum", "refnum"},

		// Separators.
		{"Command line", "command_line"},
		{"test filename", "test_filename"},
		{"ordering in a file", "ordering_in_a_file"},
		{"setTimeStampSignature/incompressibleSeed", "set_time_stamp_signature_incompressible_seed"},
		{"  Used Capacity ", "used_capacity"},

		// Implicit units.
		{"bwMiB", "bw_bytes"},
		{"blockKiB", "block_bytes"},
		{"xferKiB", "xfer_bytes"},
		{"xsizeMiB", "xsize_bytes"},
		{"bwMaxMIB", "bw_max_bytes"},
		{"bwStdMIB", "bw_std_bytes"},

		// Overrides.
		{"fsyncperwrite", "fsync_per_write"},
		{"GPUDirect", "gpudirect"},
		{"OPsMax", "ops_max"},
		{"OPsSD", "ops_sd"},
		{"StoneWallTime", "stonewall_time"},
		{"StoneWallbwMeanMIB", "stonewall_bw_mean_bytes"},
		{"stoneWallingWearOut", "stonewalling_wear_out"},
		{"stonewallingTime", "stonewalling_time"},

		// Acronyms and digits.
		{"HTTPServer", "http_server"},
		{"md5Sum", "md5_sum"},
		{"raid6", "raid6"},
		{"posix2IO", "posix2_io"},

		// Canonical keys are fixed points.
		{"bw_bytes", "bw_bytes"},
		{"stonewall_bw_mean_bytes", "stonewall_bw_mean_bytes"},
		{"gpudirect", "gpudirect"},
	} {
		if got := Normalize(test.raw); got != test.want {
			t.Errorf("Normalize(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}

func TestNormalizeSameConcept(t *testing.T) {
	a, b := Normalize("Tests[x]->TestID"), Normalize("Parameters->testID")
	if a != b || a != "test_id" {
		t.Errorf("got %q and %q, want both test_id", a, b)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{
		"TestID", "bwMiB", "StoneWallbwMeanMIB", "GPUDirect", "OPsMean",
		"Command line", "setTimeStampSignature/incompressibleSeed",
		"HTTPServer", "xsizeMiB", "Tests[x]->TestID",
	} {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", raw, twice, once)
		}
	}
}

func TestSplitKeyFactor(t *testing.T) {
	for _, test := range []struct {
		raw    string
		key    string
		factor int64
	}{
		{"bwMiB", "bw_bytes", 1 << 20},
		{"StoneWallbwMeanMIB", "stonewall_bw_mean_bytes", 1 << 20},
		{"blockKiB", "block_bytes", 1 << 10},
		{"bw_bytes", "bw_bytes", 1},
		{"OPsMax", "ops_max", 1},
	} {
		key, factor := splitKey(test.raw)
		if key != test.key || factor != test.factor {
			t.Errorf("splitKey(%q) = %q, %d, want %q, %d", test.raw, key, factor, test.key, test.factor)
		}
	}
}
