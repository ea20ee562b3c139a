// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"strings"
	"unicode"

	"github.com/hpcperf/iorperf/iorunit"
)

// nameOverrides maps IOR field names whose automatic splitting is
// wrong or ambiguous to their canonical keys. These take precedence
// over the generic rule.
var nameOverrides = map[string]string{
	"fsyncperwrite":       "fsync_per_write",
	"GPUDirect":           "gpudirect",
	"OPsMax":              "ops_max",
	"OPsMin":              "ops_min",
	"OPsMean":             "ops_mean",
	"OPsSD":               "ops_sd",
	"StoneWallTime":       "stonewall_time",
	"StoneWallbwMeanMIB":  "stonewall_bw_mean_bytes",
	"stoneWallingWearOut": "stonewalling_wear_out",
	"stonewallingTime":    "stonewalling_time",
}

// Normalize returns the canonical lower_snake_case key for an IOR
// field name.
//
// Path notation is reduced to its last component, so
// "Tests[x]->TestID" and "Parameters->testID" both normalize to
// "test_id". An implicit unit suffix such as "MiB" becomes the word
// "bytes": "bwMiB" normalizes to "bw_bytes". Otherwise, words are
// split at non-alphanumeric characters, at lower-to-upper case
// transitions, and before the last capital of an acronym that is
// followed by a lower-case letter ("GPUDirect" would become
// "gpu_direct"). Digits stay with the word they follow.
//
// Normalize is idempotent.
func Normalize(raw string) string {
	key, _ := splitKey(raw)
	return key
}

// splitKey returns the canonical key for raw and the number of
// bytes in one unit of raw's implicit unit, or 1 if it has none.
func splitKey(raw string) (key string, factor int64) {
	name := raw
	if i := strings.LastIndex(name, "->"); i >= 0 {
		name = name[i+len("->"):]
	}
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '['); i > 0 && strings.HasSuffix(name, "]") {
		name = name[:i]
	}

	stem, factor := iorunit.SplitUnitSuffix(name)
	if key, ok := nameOverrides[name]; ok {
		return key, factor
	}
	words := splitWords(stem)
	if factor != 1 {
		words = append(words, "bytes")
	}
	return strings.Join(words, "_"), factor
}

func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// End of an acronym: "GPUDirect" -> "GPU", "Direct".
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
