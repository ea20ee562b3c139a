// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// A Decoder converts IOR JSON documents into Runs. The zero value is
// ready to use.
type Decoder struct {
	// Location is used for timestamps that carry no time zone,
	// such as IOR's own "Wed Mar 27 11:51:49 2024". If nil, UTC
	// is used.
	Location *time.Location

	// DisallowUnknown causes fields that are not part of the
	// model to be reported as ErrSchemaMismatch instead of being
	// kept in Extra.
	DisallowUnknown bool
}

// Parse parses a complete IOR JSON document using a zero Decoder.
func Parse(data []byte) (*Run, error) {
	var d Decoder
	return d.Decode(data)
}

// Decode parses a complete IOR JSON document.
//
// Decoding is all-or-nothing: on error, Decode returns a nil Run and
// a *FieldError whose kind is one of ErrMalformedInput,
// ErrSchemaMismatch, ErrInvalidSizeFormat, or ErrInvalidEnumValue.
func (d *Decoder) Decode(data []byte) (*Run, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, &FieldError{Err: malformed(err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &FieldError{Err: fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedInput)}
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &FieldError{Err: mismatch("top-level value is %s, want an object", jsonType(v))}
	}
	return d.DecodeValue(obj)
}

func malformed(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: offset %d: %v", ErrMalformedInput, se.Offset, err)
	}
	if err == io.EOF {
		return fmt.Errorf("%w: empty document", ErrMalformedInput)
	}
	return fmt.Errorf("%w: %v", ErrMalformedInput, err)
}

// DecodeValue converts an already-parsed JSON document, as produced by
// encoding/json with or without UseNumber, into a Run.
//
// Declared fields decode the same either way. Unknown fields kept in
// Extra do not: with UseNumber, whole numbers such as 2 become int64
// and others float64, while without it every number is already a
// float64 and stays one.
func (d *Decoder) DecodeValue(doc map[string]interface{}) (*Run, error) {
	run := new(Run)
	if err := d.decodeRecord("", runSchema, doc, reflect.ValueOf(run).Elem()); err != nil {
		return nil, err
	}
	return run, nil
}

func (d *Decoder) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func fieldErr(path string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Path: path, Err: err}
}

// decodeRecord decodes obj into dst, a struct described by rec.
func (d *Decoder) decodeRecord(path string, rec *record, obj map[string]interface{}, dst reflect.Value) error {
	seen := make(map[string]string, len(obj)) // canonical key -> raw key
	set := make([]bool, rec.typ.NumField())
	var extra map[string]interface{}

	// Visit keys in a fixed order so errors are deterministic.
	for _, rawKey := range sortedKeys(obj) {
		key, factor := splitKey(rawKey)
		if key == "" {
			return fieldErr(path, mismatch("field %q has an empty name", rawKey))
		}
		f, ok := rec.byKey[key]
		if ok {
			key = f.key
		}
		fpath := joinPath(path, key)
		if prev, ok := seen[key]; ok {
			return fieldErr(fpath, mismatch("fields %q and %q both normalize to %q", prev, rawKey, key))
		}
		seen[key] = rawKey

		if !ok {
			if d.DisallowUnknown {
				return fieldErr(fpath, mismatch("unknown field %q", rawKey))
			}
			v, err := coerceAny(obj[rawKey])
			if err != nil {
				return fieldErr(fpath, err)
			}
			if extra == nil {
				extra = make(map[string]interface{})
			}
			extra[key] = v
			continue
		}

		present, err := d.decodeField(fpath, f, obj[rawKey], factor, dst.Field(f.index))
		if err != nil {
			return fieldErr(fpath, err)
		}
		set[f.index] = present
	}

	for _, f := range rec.fields {
		if f.required && !set[f.index] {
			return fieldErr(joinPath(path, f.key), mismatch("missing required field"))
		}
	}
	if extra != nil && rec.extra >= 0 {
		dst.Field(rec.extra).Set(reflect.ValueOf(extra))
	}
	return nil
}

// decodeField decodes raw into dst. It reports whether the field is
// present, that is, raw was neither null nor "(null)".
func (d *Decoder) decodeField(path string, f *field, raw interface{}, factor int64, dst reflect.Value) (bool, error) {
	if f.elem == nil {
		v, err := coerce(raw, f.kind, factor, d.location())
		if err != nil || v == nil {
			return false, err
		}
		rv := reflect.ValueOf(v)
		if f.ptr {
			p := reflect.New(dst.Type().Elem())
			p.Elem().Set(rv.Convert(p.Elem().Type()))
			dst.Set(p)
		} else {
			dst.Set(rv.Convert(dst.Type()))
		}
		return true, nil
	}

	if raw == nil || raw == nullString {
		return false, nil
	}

	if f.list {
		elems, ok := raw.([]interface{})
		if !ok {
			return false, mismatch("got %s, want a list", jsonType(raw))
		}
		out := reflect.MakeSlice(dst.Type(), len(elems), len(elems))
		for i, elem := range elems {
			epath := path + "[" + strconv.Itoa(i) + "]"
			obj, ok := elem.(map[string]interface{})
			if !ok {
				return false, fieldErr(epath, mismatch("got %s, want an object", jsonType(elem)))
			}
			if err := d.decodeRecord(epath, f.elem, obj, out.Index(i)); err != nil {
				return false, err
			}
		}
		dst.Set(out)
		return true, nil
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return false, mismatch("got %s, want an object", jsonType(raw))
	}
	target := dst
	if f.ptr {
		target = reflect.New(dst.Type().Elem()).Elem()
	}
	if err := d.decodeRecord(path, f.elem, obj, target); err != nil {
		return false, err
	}
	if f.ptr {
		dst.Set(target.Addr())
	}
	return true, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonType describes the JSON type of v for error messages.
func jsonType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "an object"
	case []interface{}:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	}
	return "a number"
}
