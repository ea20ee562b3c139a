// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// A record is the schema of one struct type in the model. Records
// are built once, when the package is initialized, and never
// modified.
type record struct {
	typ    reflect.Type
	fields []*field          // in declaration order
	byKey  map[string]*field // canonical key or alias -> field
	extra  int               // index of the Extra field, or -1
}

// A field is the schema of one field of a record.
type field struct {
	key      string
	index    int
	kind     Kind    // scalar kind; unused if elem != nil
	elem     *record // nested record, or element of a record list
	list     bool    // elem is the element type of a slice
	ptr      bool    // optional, stored behind a pointer
	required bool
}

var (
	timeType  = reflect.TypeOf(time.Time{})
	flagType  = reflect.TypeOf(Flag(0))
	accessTyp = reflect.TypeOf(Access(""))
	extraType = reflect.TypeOf(map[string]interface{}(nil))
)

var runSchema = newRecord(reflect.TypeOf(Run{}))

// newRecord builds the schema of struct type t. It panics if t's
// tags are inconsistent, since the model is fixed at compile time.
func newRecord(t reflect.Type) *record {
	rec := &record{typ: t, byKey: make(map[string]*field), extra: -1}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("ior")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if opts == "extra" {
			if sf.Type != extraType {
				panic(fmt.Sprintf("%s.%s: extra field must be %s", t, sf.Name, extraType))
			}
			rec.extra = i
			continue
		}
		f := &field{key: name, index: i, required: true}
		var aliases []string
		ft := sf.Type
		if ft.Kind() == reflect.Ptr {
			f.ptr, f.required = true, false
			ft = ft.Elem()
		}
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "":
			case "optional":
				f.required = false
			case "size":
				if ft.Kind() != reflect.Int64 {
					panic(fmt.Sprintf("%s.%s: size field must be int64", t, sf.Name))
				}
				f.kind = KindSize
			default:
				if !strings.HasPrefix(opt, "alias=") {
					panic(fmt.Sprintf("%s.%s: unknown tag option %q", t, sf.Name, opt))
				}
				aliases = append(aliases, strings.TrimPrefix(opt, "alias="))
			}
		}

		switch {
		case f.kind == KindSize:
		case ft == timeType:
			f.kind = KindTime
		case ft == flagType:
			f.kind = KindFlag
		case ft == accessTyp:
			f.kind = KindAccess
		case ft.Kind() == reflect.String:
			f.kind = KindString
		case ft.Kind() == reflect.Int64:
			f.kind = KindInt
		case ft.Kind() == reflect.Float64:
			f.kind = KindFloat
		case ft.Kind() == reflect.Struct:
			f.elem = newRecord(ft)
		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Struct:
			f.elem, f.list = newRecord(ft.Elem()), true
		default:
			panic(fmt.Sprintf("%s.%s: unsupported type %s", t, sf.Name, sf.Type))
		}

		rec.fields = append(rec.fields, f)
		for _, key := range append([]string{name}, aliases...) {
			if Normalize(key) != key {
				panic(fmt.Sprintf("%s.%s: key %q is not canonical", t, sf.Name, key))
			}
			if _, dup := rec.byKey[key]; dup {
				panic(fmt.Sprintf("%s: duplicate key %q", t, key))
			}
			rec.byKey[key] = f
		}
	}
	return rec
}

// DeclaredKind returns the declared kind of the field with the given
// canonical path, such as "tests.results.bw_bytes". List indexes are
// omitted from the path. It returns false if there is no such scalar
// field in the model.
func DeclaredKind(path string) (Kind, bool) {
	rec := runSchema
	parts := strings.Split(path, ".")
	for i, part := range parts {
		f, ok := rec.byKey[part]
		if !ok {
			return 0, false
		}
		if i == len(parts)-1 {
			if f.elem != nil {
				return 0, false
			}
			return f.kind, true
		}
		if f.elem == nil {
			return 0, false
		}
		rec = f.elem
	}
	return 0, false
}
