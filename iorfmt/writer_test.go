// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestWriterRoundTrip(t *testing.T) {
	run, err := Parse(readSample(t))
	if err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	w := NewWriter(out)
	if err := w.Write(run); err != nil {
		t.Fatal(err)
	}
	first := out.String()

	run2, err := Parse(out.Bytes())
	if err != nil {
		t.Fatalf("parsing written document: %v\n%s", err, first)
	}
	if diff := cmp.Diff(run, run2); diff != "" {
		t.Fatalf("round trip changed the run: (-want +got)\n%s", diff)
	}

	// Writing the re-parsed run is a fixed point.
	out.Reset()
	if err := w.Write(run2); err != nil {
		t.Fatal(err)
	}
	if out.String() != first {
		t.Fatalf("want:\n%sgot:\n%s", first, out.String())
	}
}

func TestWriterFormat(t *testing.T) {
	run, err := Parse(readSample(t))
	if err != nil {
		t.Fatal(err)
	}
	out := new(strings.Builder)
	if err := NewWriter(out).Write(run); err != nil {
		t.Fatal(err)
	}
	got := out.String()

	const head = `{
  "version": "4.0.0",
  "began": "2024-03-27T11:51:49Z",
  "command_line": "ior -a POSIX -t 1m -b 256m -i 2 -C -O summaryFormat=JSON",
  "machine": "Linux node01",
  "tests": [
`
	if !strings.HasPrefix(got, head) {
		t.Errorf("want prefix:\n%sgot:\n%s", head, got)
	}
	if !strings.HasSuffix(got, "\"finished\": \"2024-03-27T11:52:07Z\"\n}\n") {
		t.Errorf("document does not end with finished time:\n%s", got)
	}
	for _, want := range []string{
		`"bw_bytes": 6050265274.7776`,
		`"block_bytes": 268435456`,
		`"xfersize": 1048576`,
		`"gpudirect": "0"`,
		`"capacity": "1.2 PiB"`,
		`"stonewall_bw_mean_bytes": 851863142.4`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s", want)
		}
	}
	// Absent optional fields are omitted, not written as null.
	for _, notWant := range []string{`"options": null`, `(null)`, `"reorder_random_seed"`} {
		if strings.Contains(got, notWant) {
			t.Errorf("output contains %s", notWant)
		}
	}
}

func TestWriterCompact(t *testing.T) {
	finished := time.Date(2024, time.March, 27, 11, 52, 7, 500, time.UTC)
	run := &Run{
		Version:  "4.0.0",
		Began:    time.Date(2024, time.March, 27, 11, 51, 49, 0, time.UTC),
		Machine:  "Linux node01",
		Tests:    []Test{},
		Finished: &finished,
		Extra:    map[string]interface{}{"z": int64(1), "a": "x"},
	}
	out := new(strings.Builder)
	w := NewWriter(out)
	w.Indent = ""
	if err := w.Write(run); err != nil {
		t.Fatal(err)
	}
	const want = `{"version":"4.0.0","began":"2024-03-27T11:51:49Z","command_line":"","machine":"Linux node01","tests":[],"finished":"2024-03-27T11:52:07.0000005Z","a":"x","z":1}` + "\n"
	if got := out.String(); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}

func TestWriterExtraNumbers(t *testing.T) {
	run := &Run{
		Version: "4.0.0",
		Began:   time.Date(2024, time.March, 27, 11, 51, 49, 0, time.UTC),
		Machine: "Linux node01",
		Tests:   []Test{},
		Extra: map[string]interface{}{
			"capacity_ratio": 2.0,
			"count":          int64(2),
			"big":            1e21,
			"nested":         map[string]interface{}{"r": 3.0},
			"list":           []interface{}{1.5, 4.0, int64(4)},
		},
	}
	out := new(strings.Builder)
	w := NewWriter(out)
	w.Indent = ""
	if err := w.Write(run); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	const want = `"big":1e+21,"capacity_ratio":2.0,"count":2,"list":[1.5,4.0,4],"nested":{"r":3.0}}`
	if !strings.HasSuffix(got, want+"\n") {
		t.Errorf("want suffix:\n%s\ngot:\n%s", want, got)
	}

	run2, err := Parse([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(run.Extra, run2.Extra); diff != "" {
		t.Errorf("round trip changed Extra: (-want +got)\n%s", diff)
	}
}
