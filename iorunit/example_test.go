// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorunit_test

import (
	"fmt"
	"log"

	"github.com/hpcperf/iorperf/iorunit"
)

func ExampleParseSize() {
	for _, s := range []string{"4 KiB", "1MiB", "4096 bytes", "1.5 GiB"} {
		n, err := iorunit.ParseSize(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(n)
	}
	// Output:
	// 4096
	// 1048576
	// 4096
	// 1610612736
}

func ExampleScale() {
	fmt.Println(iorunit.FormatSize(6050265274.7776))
	fmt.Println(iorunit.FormatNum(5800))
	fmt.Println(iorunit.Scale(1<<20, iorunit.ClassOf("B/s")))
	// Output:
	// 5.63 GiB
	// 5.80 K
	// 1.00 MiB
}
