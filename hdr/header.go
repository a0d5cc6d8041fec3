/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"io"
	"strings"
)

// Add appends the name, value pair to the header. It reports whether
// the pair was stored: an empty name or a header already at capacity
// rejects the pair and leaves the set unchanged.
func (h *Header) Add(name, value string) bool {
	if name == "" || len(h.fields) >= h.Limit() {
		return false
	}
	h.fields = append(h.fields, Field{Name: name, Value: value})
	return true
}

// Set updates the first field whose name matches case-insensitively,
// or appends via Add when no such field exists. The stored name keeps
// its original case on update.
func (h *Header) Set(name, value string) bool {
	if i := h.find(name); i != -1 {
		h.fields[i].Value = value
		return true
	}
	return h.Add(name, value)
}

// Value returns the value of the first field matching name
// case-insensitively, or "" when name is empty or absent. Use Has to
// distinguish an absent field from an empty value.
func (h *Header) Value(name string) string {
	if i := h.find(name); i != -1 {
		return h.fields[i].Value
	}
	return ""
}

// Has reports whether a field matching name exists.
func (h *Header) Has(name string) bool {
	return h.find(name) != -1
}

// Erase removes every field matching name case-insensitively.
// It is a no-op when name is empty or absent.
func (h *Header) Erase(name string) {
	for i := h.find(name); i != -1; i = h.find(name) {
		h.fields = append(h.fields[:i], h.fields[i+1:]...)
	}
}

// Clear drops all fields. The capacity is untouched.
func (h *Header) Clear() {
	h.fields = h.fields[:0]
}

// Size returns the number of stored fields.
func (h *Header) Size() int {
	return len(h.fields)
}

// Limit returns the capacity fixed at construction.
func (h *Header) Limit() int {
	if h.limit <= 0 {
		return DefaultFieldLimit
	}
	return h.limit
}

// IsEmpty reports whether the header holds no fields.
func (h *Header) IsEmpty() bool {
	return len(h.fields) == 0
}

// Fields returns a copy of the stored fields in insertion order.
func (h *Header) Fields() []Field {
	fields := make([]Field, len(h.fields))
	copy(fields, h.fields)
	return fields
}

// Write writes the header section in wire format: one "Name: Value\r\n"
// line per field in insertion order, closed by the blank line that
// separates headers from the message body. The blank line is written
// even when the set is empty, so a serialized message always carries
// its header terminator.
func (h *Header) Write(w io.Writer) error {
	ws, ok := w.(writeStringer)
	if !ok {
		ws = stringWriter{w}
	}
	for _, f := range h.fields {
		v := headerNewlineToSpace.Replace(f.Value)
		v = TrimString(v)
		for _, s := range []string{f.Name, ": ", v, "\r\n"} {
			if _, err := ws.WriteString(s); err != nil {
				return err
			}
		}
	}
	_, err := ws.WriteString("\r\n")
	return err
}

// String returns the header section in wire format.
func (h *Header) String() string {
	var sb strings.Builder
	h.Write(&sb)
	return sb.String()
}

// find returns the index of the first field matching name
// case-insensitively, or -1.
func (h *Header) find(name string) int {
	if name == "" {
		return -1
	}
	for i := range h.fields {
		if strings.EqualFold(h.fields[i].Name, name) {
			return i
		}
	}
	return -1
}
