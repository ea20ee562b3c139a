// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iorfmt parses the JSON output of the IOR I/O benchmark
// (ior -O summaryFormat=JSON) into a normalized, statically typed
// data model.
//
// IOR names its fields inconsistently ("TestID", "testID",
// "test filename", "bwMiB"), mixes units, and sometimes serializes
// numbers as strings. Parse maps every field name to a canonical
// lower_snake_case key (see Normalize), converts every byte quantity
// to an integer count of bytes, and coerces each value to the type
// declared for its field in the model (see Coerce).
//
// The model is described by the struct types in this package. Each
// field's `ior` tag gives its canonical key; the Go type of the field
// gives its declared kind. A pointer field is optional. The "size"
// tag option marks an int64 field as a byte quantity. Fields IOR
// reports that are not part of the model are kept, under their
// canonical keys, in each record's Extra map.
//
// A parsed Run is never modified by this package. Writer emits a Run
// as JSON using canonical keys, which Parse accepts as input.
package iorfmt

import "time"

// A Run is the complete output of one IOR invocation.
type Run struct {
	Version     string    `ior:"version"`
	Began       time.Time `ior:"began"`
	CommandLine string    `ior:"command_line"`
	Machine     string    `ior:"machine"`
	Tests       []Test    `ior:"tests"`

	// Summary is IOR's per-operation summary. It is missing if
	// IOR did not finish.
	Summary  []Summary  `ior:"summary,optional"`
	Finished *time.Time `ior:"finished"`

	Extra map[string]interface{} `ior:",extra"`

	// File is the label of the input this Run was read from by
	// Files. It is not part of the document.
	File string `ior:"-"`
}

// Pos returns the input label of r. It implements Record.
func (r *Run) Pos() (fileName, path string) {
	return r.File, ""
}

// A Test is one IOR test: the parameters it ran with and the
// result of each operation of each repetition, in order.
type Test struct {
	TestID     int64      `ior:"test_id"`
	StartTime  time.Time  `ior:"start_time"`
	Path       *string    `ior:"path"`
	Parameters Parameters `ior:"parameters"`
	Options    *Options   `ior:"options"`
	Results    []Result   `ior:"results"`

	Extra map[string]interface{} `ior:",extra"`
}

// Parameters are the raw IOR test parameters.
type Parameters struct {
	TestID                 int64   `ior:"test_id"`
	Refnum                 int64   `ior:"refnum"`
	API                    string  `ior:"api"`
	Platform               string  `ior:"platform"`
	TestFileName           string  `ior:"test_file_name"`
	DeadlineForStonewall   int64   `ior:"deadline_for_stonewall"`
	StonewallingWearOut    int64   `ior:"stonewalling_wear_out"`
	MaxTimeDuration        int64   `ior:"max_time_duration"`
	OutlierThreshold       int64   `ior:"outlier_threshold"`
	Options                *string `ior:"options"`
	DryRun                 Flag    `ior:"dry_run"`
	Nodes                  int64   `ior:"nodes"`
	MemoryPerTask          int64   `ior:"memory_per_task,size"`
	MemoryPerNode          int64   `ior:"memory_per_node,size"`
	TasksPerNode           int64   `ior:"tasks_per_node"`
	Repetitions            int64   `ior:"repetitions"`
	MultiFile              Flag    `ior:"multi_file"`
	InterTestDelay         int64   `ior:"inter_test_delay"`
	Fsync                  Flag    `ior:"fsync"`
	FsyncPerWrite          Flag    `ior:"fsync_per_write"`
	UseExistingTestFile    Flag    `ior:"use_existing_test_file"`
	UniqueDir              Flag    `ior:"unique_dir"`
	SingleXferAttempt      Flag    `ior:"single_xfer_attempt"`
	ReadFile               Flag    `ior:"read_file"`
	WriteFile              Flag    `ior:"write_file"`
	FilePerProc            Flag    `ior:"file_per_proc"`
	ReorderTasks           Flag    `ior:"reorder_tasks"`
	ReorderTasksRandom     Flag    `ior:"reorder_tasks_random"`
	ReorderTasksRandomSeed int64   `ior:"reorder_tasks_random_seed"`
	RandomOffset           Flag    `ior:"random_offset"`
	CheckWrite             Flag    `ior:"check_write"`
	CheckRead              Flag    `ior:"check_read"`
	DataPacketType         int64   `ior:"data_packet_type"`
	KeepFile               Flag    `ior:"keep_file"`
	KeepFileWithError      Flag    `ior:"keep_file_with_error"`
	WarningAsErrors        Flag    `ior:"warning_as_errors"`
	Verbose                int64   `ior:"verbose"`
	IncompressibleSeed     int64   `ior:"set_time_stamp_signature_incompressible_seed"`
	Collective             Flag    `ior:"collective"`
	SegmentCount           int64   `ior:"segment_count"`
	TransferSize           int64   `ior:"transfer_size,size"`
	BlockSize              int64   `ior:"block_size,size"`

	Extra map[string]interface{} `ior:",extra"`
}

// Options is IOR's human-readable summary of a test's options.
// Sizes such as "1 MiB" are converted to bytes.
type Options struct {
	API               string `ior:"api"`
	APIVersion        string `ior:"api_version"`
	TestFilename      string `ior:"test_filename"`
	Access            string `ior:"access"`
	Type              string `ior:"type"`
	Segments          int64  `ior:"segments"`
	OrderingInAFile   string `ior:"ordering_in_a_file"`
	OrderingInterFile string `ior:"ordering_inter_file"`
	TaskOffset        *int64 `ior:"task_offset"`
	ReorderRandomSeed *int64 `ior:"reorder_random_seed"`
	Nodes             int64  `ior:"nodes"`
	Tasks             int64  `ior:"tasks"`
	ClientsPerNode    int64  `ior:"clients_per_node"`
	MemoryPerTask     *int64 `ior:"memory_per_task,size"`
	MemoryPerNode     *int64 `ior:"memory_per_node,size"`
	MemoryBuffer      string `ior:"memory_buffer"`
	DataAccess        string `ior:"data_access"`
	GPUDirect         string `ior:"gpudirect"`
	Repetitions       int64  `ior:"repetitions"`
	XferSize          int64  `ior:"xfersize,size"`
	BlockSize         int64  `ior:"blocksize,size"`
	AggregateFilesize int64  `ior:"aggregate_filesize,size"`
	DryRun            *Flag  `ior:"dry_run"`
	Verbose           *int64 `ior:"verbose"`
	StonewallingTime  *int64 `ior:"stonewalling_time"`
	StonewallWearOut  *int64 `ior:"stonewalling_wear_out,alias=stonewall_wear_out"`

	Extra map[string]interface{} `ior:",extra"`
}

// A Result is the measurement of one operation in one repetition.
// Bandwidth is in bytes per second and times are in seconds.
type Result struct {
	Access     Access  `ior:"access"`
	BW         float64 `ior:"bw_bytes"`
	BlockBytes int64   `ior:"block_bytes,size"`
	XferBytes  int64   `ior:"xfer_bytes,size"`
	IOPS       float64 `ior:"iops"`
	Latency    float64 `ior:"latency"`
	OpenTime   float64 `ior:"open_time"`
	WrRdTime   float64 `ior:"wr_rd_time"`
	CloseTime  float64 `ior:"close_time"`
	TotalTime  float64 `ior:"total_time"`

	Extra map[string]interface{} `ior:",extra"`
}

// A Summary is IOR's summary of one operation of one test across all
// repetitions. Bandwidths are in bytes per second.
type Summary struct {
	Operation              Access   `ior:"operation"`
	API                    string   `ior:"api"`
	TestID                 int64    `ior:"test_id"`
	ReferenceNumber        int64    `ior:"reference_number"`
	SegmentCount           int64    `ior:"segment_count"`
	BlockSize              int64    `ior:"block_size,size"`
	TransferSize           int64    `ior:"transfer_size,size"`
	NumTasks               int64    `ior:"num_tasks"`
	TasksPerNode           int64    `ior:"tasks_per_node"`
	Repetitions            int64    `ior:"repetitions"`
	FilePerProc            Flag     `ior:"file_per_proc"`
	ReorderTasks           Flag     `ior:"reorder_tasks"`
	TaskPerNodeOffset      int64    `ior:"task_per_node_offset"`
	ReorderTasksRandom     Flag     `ior:"reorder_tasks_random"`
	ReorderTasksRandomSeed int64    `ior:"reorder_tasks_random_seed"`
	BWMax                  float64  `ior:"bw_max_bytes"`
	BWMin                  float64  `ior:"bw_min_bytes"`
	BWMean                 float64  `ior:"bw_mean_bytes"`
	BWStd                  float64  `ior:"bw_std_bytes"`
	OpsMax                 float64  `ior:"ops_max"`
	OpsMin                 float64  `ior:"ops_min"`
	OpsMean                float64  `ior:"ops_mean"`
	OpsSD                  float64  `ior:"ops_sd"`
	MeanTime               float64  `ior:"mean_time"`
	StonewallTime          *float64 `ior:"stonewall_time"`
	StonewallBWMean        *float64 `ior:"stonewall_bw_mean_bytes"`
	XSize                  int64    `ior:"xsize_bytes,size"`

	Extra map[string]interface{} `ior:",extra"`
}
