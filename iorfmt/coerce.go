// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hpcperf/iorperf/iorunit"
)

// A Kind is the declared type of a field. The declared type, not the
// JSON representation of a value, determines how the value is
// coerced, since IOR sometimes serializes numbers as strings.
type Kind int

const (
	// KindAny is used for fields that are not in the schema.
	// JSON numbers become int64 if integral and float64 otherwise.
	KindAny Kind = iota
	// KindString passes strings through. Numbers become their JSON text.
	KindString
	// KindInt is an integer-derived quantity. It yields int64.
	KindInt
	// KindFloat yields float64.
	KindFloat
	// KindSize is a byte quantity. It yields an int64 byte count.
	KindSize
	// KindTime yields a time.Time.
	KindTime
	// KindFlag is a boolean flag. It yields a Flag.
	KindFlag
	// KindAccess is the access type enum. It yields an Access.
	KindAccess
)

var kindNames = []string{"any", "string", "int", "float", "size", "time", "flag", "access"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Flag is an IOR boolean parameter. It keeps IOR's 0/1 integer
// representation; use Bool to test it.
type Flag int

// Bool reports whether f is set.
func (f Flag) Bool() bool {
	return f != 0
}

// An Access is the I/O operation an IOR result measures.
type Access string

const (
	Read  Access = "read"
	Write Access = "write"
)

// ParseAccess returns the Access named by s, ignoring case and
// surrounding white space.
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	}
	return "", fmt.Errorf("%w: %q is not an access type", ErrInvalidEnumValue, s)
}

// nullString is how IOR prints a NULL C string.
const nullString = "(null)"

// Coerce converts a raw JSON value to the Go representation of the
// declared kind. raw is a value as produced by encoding/json, with or
// without UseNumber. key is the canonical field name and is only used
// in errors.
//
// The literal string "(null)" and JSON null yield a nil result for
// every kind. Otherwise the result is a string, int64, float64,
// time.Time, Flag, or Access for the scalar kinds. Zone-less times
// are interpreted in UTC.
func Coerce(key string, raw interface{}, kind Kind) (interface{}, error) {
	v, err := coerce(raw, kind, 1, time.UTC)
	if err != nil {
		return nil, &FieldError{Path: key, Err: err}
	}
	return v, nil
}

// coerce converts raw to kind. factor is the number of bytes in
// raw's implicit unit and scales bare numbers of size, int, and
// float kinds.
func coerce(raw interface{}, kind Kind, factor int64, loc *time.Location) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok && s == nullString {
		return nil, nil
	}

	switch kind {
	case KindSize:
		if s, ok := raw.(string); ok {
			if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return iorunit.ParseSize(s)
			}
		}
		f, lit, err := number(raw)
		if err != nil {
			return nil, err
		}
		if factor == 1 {
			if n, err := strconv.ParseInt(lit, 10, 64); err == nil && n >= 0 {
				return n, nil
			}
		}
		return iorunit.Bytes(f, factor)

	case KindTime:
		return parseTime(raw, loc)

	case KindFlag:
		if b, ok := raw.(bool); ok {
			if b {
				return Flag(1), nil
			}
			return Flag(0), nil
		}
		f, _, err := number(raw)
		if err != nil {
			return nil, err
		}
		if f != 0 {
			return Flag(1), nil
		}
		return Flag(0), nil

	case KindAccess:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v is not an access type", ErrInvalidEnumValue, raw)
		}
		return ParseAccess(s)

	case KindInt:
		f, lit, err := number(raw)
		if err != nil {
			return nil, err
		}
		if factor == 1 {
			if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
				return n, nil
			}
		}
		return toInt(f * float64(factor))

	case KindFloat:
		f, _, err := number(raw)
		if err != nil {
			return nil, err
		}
		return f * float64(factor), nil

	case KindString:
		switch v := raw.(type) {
		case string:
			return v, nil
		case bool:
			return strconv.FormatBool(v), nil
		}
		_, lit, err := number(raw)
		if err != nil {
			return nil, mismatch("expected a string, got %T", raw)
		}
		return lit, nil

	case KindAny:
		return coerceAny(raw)
	}
	panic(fmt.Sprintf("bad Kind %v", kind))
}

// number extracts a numeric value from raw, which may be a JSON
// number, a numeric string, or a Go number. lit is the textual form.
func number(raw interface{}) (f float64, lit string, err error) {
	switch v := raw.(type) {
	case json.Number:
		lit = v.String()
	case string:
		lit = strings.TrimSpace(v)
	case float64:
		return v, strconv.FormatFloat(v, 'g', -1, 64), nil
	case float32:
		return float64(v), strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case int:
		return float64(v), strconv.Itoa(v), nil
	case int64:
		return float64(v), strconv.FormatInt(v, 10), nil
	default:
		return 0, "", mismatch("expected a number, got %T", raw)
	}
	f, err = strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, "", mismatch("expected a number, got %q", lit)
	}
	return f, lit, nil
}

// toInt rounds f to the nearest integer, with ties to even.
func toInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, mismatch("%v is not an integer", f)
	}
	r := math.RoundToEven(f)
	if r < math.MinInt64 || r >= math.MaxInt64 {
		return 0, mismatch("%v overflows int64", f)
	}
	return int64(r), nil
}

// timeLayouts are tried in order. The first is IOR's ctime-style
// format; the rest cover re-imported, ISO 8601 timestamps.
var timeLayouts = []string{
	"Mon Jan _2 15:04:05 2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func parseTime(raw interface{}, loc *time.Location) (time.Time, error) {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return time.Time{}, mismatch("unrecognized time %q", s)
		}
	}
	// Seconds since the Unix epoch.
	f, _, err := number(raw)
	if err != nil {
		return time.Time{}, mismatch("expected a time, got %T", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, mismatch("%v is not a time", f)
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).In(loc), nil
}

// coerceAny converts a value with no declared kind, normalizing the
// keys of nested objects.
func coerceAny(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == nullString {
			return nil, nil
		}
		return v, nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, mismatch("bad number %q", v)
		}
		return f, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for _, rawKey := range sortedKeys(v) {
			key := Normalize(rawKey)
			if key == "" {
				return nil, mismatch("field %q has an empty name", rawKey)
			}
			if _, ok := out[key]; ok {
				return nil, mismatch("duplicate field %q", key)
			}
			x, err := coerceAny(v[rawKey])
			if err != nil {
				return nil, err
			}
			out[key] = x
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elt := range v {
			x, err := coerceAny(elt)
			if err != nil {
				return nil, err
			}
			out[i] = x
		}
		return out, nil
	}
	// bool, float64 and other Go scalars pass through.
	return raw, nil
}
