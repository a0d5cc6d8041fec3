/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package h2 holds the structural value objects of HTTP/2 framing.
// It is not a protocol engine: no flow control, no stream state.
package h2

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Type identifies the kind of frame a frame header announces.
type Type uint8

const (
	Data Type = iota
	Headers
	Priority
	RstStream
	Settings
	PushPromise
	Ping
	Goaway
	WindowUpdate
	Continuation
)

var typeStrings = [...]string{
	"DATA", "HEADERS", "PRIORITY", "RST_STREAM", "SETTINGS",
	"PUSH_PROMISE", "PING", "GOAWAY", "WINDOW_UPDATE", "CONTINUATION",
}

// String returns the frame type label used in the protocol spec.
func (t Type) String() string {
	if int(t) < len(typeStrings) {
		return typeStrings[t]
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

// A Flag is a bit set on a frame. The same bit can mean different
// things on different frame types (ACK and END_STREAM share 0x1).
type Flag uint8

const (
	None       Flag = 0x00
	Ack        Flag = 0x01
	EndStream  Flag = 0x01
	EndHeaders Flag = 0x04
	Padded     Flag = 0x08
	PriorityF  Flag = 0x20
)

// Has reports whether all bits of v are set in f.
func (f Flag) Has(v Flag) bool {
	return f&v == v
}

// MaxFrameLength is the largest payload length a frame header can
// carry: the length field is 24 bits wide on the wire.
const MaxFrameLength = 1<<24 - 1

var (
	// ErrFrameLength reports a payload length beyond MaxFrameLength.
	ErrFrameLength = errors.New("h2: frame length exceeds maximum payload size")

	// ErrFrameType reports a frame type outside the known set.
	ErrFrameType = errors.New("h2: unknown frame type")
)

// A FrameHeader is the fixed 9-octet prefix of every HTTP/2 frame:
// payload length, frame type, flags and the associated stream id.
// The stream id is masked to 31 bits; the reserved high bit is never
// stored.
type FrameHeader struct {
	length uint32
	sid    uint32
	flags  Flag
	typ    Type
}

// NewFrameHeader builds a frame header, rejecting an oversized length
// or an unknown type.
func NewFrameHeader(length uint32, typ Type, flags Flag, sid uint32) (*FrameHeader, error) {
	h := &FrameHeader{flags: flags}
	if err := h.SetLength(length); err != nil {
		return nil, err
	}
	if err := h.SetType(typ); err != nil {
		return nil, err
	}
	h.SetSid(sid)
	return h, nil
}

// Length returns the payload length.
func (h *FrameHeader) Length() uint32 { return h.length }

// SetLength sets the payload length, rejecting values beyond
// MaxFrameLength.
func (h *FrameHeader) SetLength(length uint32) error {
	if length > MaxFrameLength {
		return ErrFrameLength
	}
	h.length = length
	return nil
}

// Type returns the frame type.
func (h *FrameHeader) Type() Type { return h.typ }

// SetType sets the frame type, rejecting unknown types.
func (h *FrameHeader) SetType(typ Type) error {
	if typ > Continuation {
		return ErrFrameType
	}
	h.typ = typ
	return nil
}

// Flags returns the flags set on the frame.
func (h *FrameHeader) Flags() Flag { return h.flags }

// SetFlags replaces the frame's flags.
func (h *FrameHeader) SetFlags(flags Flag) {
	h.flags = flags
}

// Sid returns the id of the stream the frame belongs to.
func (h *FrameHeader) Sid() uint32 { return h.sid }

// SetSid sets the stream id, dropping the reserved high bit.
func (h *FrameHeader) SetSid(sid uint32) {
	h.sid = sid & 0x7fffffff
}

// String renders the header for diagnostics.
func (h *FrameHeader) String() string {
	return fmt.Sprintf("[%s length=%d flags=%#x sid=%d]", h.typ, h.length, uint8(h.flags), h.sid)
}
