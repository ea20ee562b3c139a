// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorunit

import (
	"errors"
	"math"
	"testing"
)

func TestParseSize(t *testing.T) {
	test := func(in string, want int64) {
		t.Helper()
		got, err := ParseSize(in)
		if err != nil {
			t.Errorf("ParseSize(%q): unexpected error %v", in, err)
			return
		}
		if got != want {
			t.Errorf("ParseSize(%q) = %d, want %d", in, got, want)
		}
	}

	test("0", 0)
	test("512", 512)
	test("4096 bytes", 4096)
	test("1 byte", 1)
	test("7 B", 7)
	test("4 KiB", 4<<10)
	test("4KiB", 4<<10)
	test("4 kib", 4<<10)
	test("4 Ki", 4<<10)
	test("1 MiB", 1<<20)
	test("  16   MiB  ", 16<<20)
	test("3 GiB", 3<<30)
	test("2 TiB", 2<<40)
	test("1 PiB", 1<<50)
	test("4EiB", 4<<60)
	test("1.5 KiB", 1536)
	test("4.5 KiB", 4608)
	test("1e3 B", 1000)
	// Fractional bytes round half to even.
	test("0.5", 0)
	test("1.5", 2)
	test("2.5 B", 2)
	test("0.0009765625 KiB", 1)
}

func TestParseSizeExact(t *testing.T) {
	for k, unit := range []string{"B", "KiB", "MiB", "GiB", "TiB"} {
		for _, n := range []int64{1, 3, 17, 1000, 4097} {
			in := itoa(n) + " " + unit
			got, err := ParseSize(in)
			if err != nil {
				t.Fatalf("ParseSize(%q): %v", in, err)
			}
			if want := n << (10 * uint(k)); got != want {
				t.Errorf("ParseSize(%q) = %d, want %d", in, got, want)
			}
		}
	}
}

func itoa(n int64) string {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return string(buf[i:])
}

func TestParseSizeErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"KiB",
		"four KiB",
		"4 KB",
		"4 kilobytes",
		"4 XiB",
		"-4 KiB",
		"-1.5 MiB",
		"9999999999 EiB",
		"1.2.3 MiB",
	} {
		_, err := ParseSize(in)
		if err == nil {
			t.Errorf("ParseSize(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrInvalidSizeFormat) {
			t.Errorf("ParseSize(%q): error %v is not ErrInvalidSizeFormat", in, err)
		}
		var se *SizeError
		if !errors.As(err, &se) || se.Input != in {
			t.Errorf("ParseSize(%q): want *SizeError with input, got %#v", in, err)
		}
	}
}

func TestBytes(t *testing.T) {
	test := func(mag float64, factor int64, want int64) {
		t.Helper()
		got, err := Bytes(mag, factor)
		if err != nil {
			t.Errorf("Bytes(%v, %d): unexpected error %v", mag, factor, err)
			return
		}
		if got != want {
			t.Errorf("Bytes(%v, %d) = %d, want %d", mag, factor, got, want)
		}
	}
	test(0, 1<<20, 0)
	test(4, 1<<10, 4096)
	test(1024.0, 1<<10, 1<<20)
	test(0.9999999999, 1<<10, 1024)
	test(0.5, 1, 0)
	test(3.5, 1, 4)

	for _, mag := range []float64{-1, math.NaN(), math.Inf(1), 1e30} {
		if _, err := Bytes(mag, 1<<10); !errors.Is(err, ErrInvalidSizeFormat) {
			t.Errorf("Bytes(%v): want ErrInvalidSizeFormat, got %v", mag, err)
		}
	}
}

func TestSplitUnitSuffix(t *testing.T) {
	for _, test := range []struct {
		name   string
		stem   string
		factor int64
	}{
		{"bwMiB", "bw", 1 << 20},
		{"blockKiB", "block", 1 << 10},
		{"xferKiB", "xfer", 1 << 10},
		{"xsizeMiB", "xsize", 1 << 20},
		{"bwMaxMIB", "bwMax", 1 << 20},
		{"StoneWallbwMeanMIB", "StoneWallbwMean", 1 << 20},
		{"capacityGiB", "capacity", 1 << 30},
		{"bw_bytes", "bw_bytes", 1},
		{"bw_mib", "bw_mib", 1},
		{"MiB", "MiB", 1},
		{"iops", "iops", 1},
		{"totalB", "totalB", 1},
	} {
		stem, factor := SplitUnitSuffix(test.name)
		if stem != test.stem || factor != test.factor {
			t.Errorf("SplitUnitSuffix(%q) = %q, %d, want %q, %d", test.name, stem, factor, test.stem, test.factor)
		}
	}
}
