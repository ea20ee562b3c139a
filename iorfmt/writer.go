// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iorfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"
)

// A Writer writes Runs as normalized JSON documents.
//
// Keys are canonical, fields appear in model order, times are written
// in RFC 3339 format, and absent optional fields are omitted. Parse
// reads this format back into an identical Run.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
	out bytes.Buffer

	// Indent is the per-level indentation. If empty, documents
	// are written on a single line.
	Indent string
}

// NewWriter returns a writer that writes normalized IOR results to w,
// indented by two spaces.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, Indent: "  "}
}

// Write writes run to w, followed by a newline.
func (w *Writer) Write(run *Run) error {
	w.buf.Reset()
	if err := w.writeRecord(runSchema, reflect.ValueOf(run).Elem()); err != nil {
		return err
	}
	data := w.buf.Bytes()
	if w.Indent != "" {
		w.out.Reset()
		if err := json.Indent(&w.out, data, "", w.Indent); err != nil {
			return err
		}
		data = w.out.Bytes()
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w.w, "\n")
	return err
}

func (w *Writer) writeRecord(rec *record, v reflect.Value) error {
	w.buf.WriteByte('{')
	first := true
	key := func(k string) {
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		w.writeJSON(k)
		w.buf.WriteByte(':')
	}

	for _, f := range rec.fields {
		fv := v.Field(f.index)
		if f.ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if f.list && fv.IsNil() && !f.required {
			continue
		}

		key(f.key)
		switch {
		case f.list:
			w.buf.WriteByte('[')
			for i := 0; i < fv.Len(); i++ {
				if i > 0 {
					w.buf.WriteByte(',')
				}
				if err := w.writeRecord(f.elem, fv.Index(i)); err != nil {
					return err
				}
			}
			w.buf.WriteByte(']')
		case f.elem != nil:
			if err := w.writeRecord(f.elem, fv); err != nil {
				return err
			}
		case f.kind == KindTime:
			w.writeJSON(fv.Interface().(time.Time).Format(time.RFC3339Nano))
		default:
			if err := w.writeJSON(fv.Interface()); err != nil {
				return fmt.Errorf("writing %s: %w", f.key, err)
			}
		}
	}

	if rec.extra >= 0 {
		extra := v.Field(rec.extra)
		for _, k := range sortedKeys(extra.Interface().(map[string]interface{})) {
			key(k)
			if err := w.writeAny(extra.MapIndex(reflect.ValueOf(k)).Interface()); err != nil {
				return fmt.Errorf("writing %s: %w", k, err)
			}
		}
	}
	w.buf.WriteByte('}')
	return nil
}

// writeAny writes a value kept in Extra. A float64 is always written
// with a fraction or exponent so it decodes as a float64 again.
func (w *Writer) writeAny(v interface{}) error {
	switch v := v.(type) {
	case float64:
		start := w.buf.Len()
		if err := w.writeJSON(v); err != nil {
			return err
		}
		if !bytes.ContainsAny(w.buf.Bytes()[start:], ".eE") {
			w.buf.WriteString(".0")
		}
	case map[string]interface{}:
		w.buf.WriteByte('{')
		for i, k := range sortedKeys(v) {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			w.writeJSON(k)
			w.buf.WriteByte(':')
			if err := w.writeAny(v[k]); err != nil {
				return err
			}
		}
		w.buf.WriteByte('}')
	case []interface{}:
		w.buf.WriteByte('[')
		for i, elt := range v {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.writeAny(elt); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
	default:
		return w.writeJSON(v)
	}
	return nil
}

func (w *Writer) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.buf.Write(data)
	return nil
}
