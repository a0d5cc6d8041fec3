/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/hioa-cs/http/hdr"
)

func newMessage(limit int) Message {
	return Message{header: hdr.New(limit)}
}

// Header returns the message's header set. The set is owned by the
// message; mutations through the returned pointer are visible in the
// serialized output.
func (m *Message) Header() *hdr.Header {
	return m.header
}

// AddBody replaces the body with view and records its exact length in
// the Content-Length field. An empty view is a no-op; use ClearBody to
// drop an existing body. The message keeps the slice as handed in.
func (m *Message) AddBody(view []byte) {
	if len(view) == 0 {
		return
	}
	m.body = view
	m.header.Set(hdr.ContentLength, strconv.Itoa(len(view)))
}

// AppendBody extends the body with view and updates Content-Length.
// The existing body is copied on first growth so the buffer AddBody
// borrowed from is never written to.
func (m *Message) AppendBody(view []byte) {
	if len(view) == 0 {
		return
	}
	m.body = append(m.body[:len(m.body):len(m.body)], view...)
	m.header.Set(hdr.ContentLength, strconv.Itoa(len(m.body)))
}

// Body returns the message body, empty when none has been set.
func (m *Message) Body() []byte {
	return m.body
}

// ClearBody drops the body and erases the Content-Length field
// entirely rather than setting it to zero.
func (m *Message) ClearBody() {
	m.body = nil
	m.header.Erase(hdr.ContentLength)
}

// reset drops all fields and the body, keeping the capacity.
func (m *Message) reset() {
	m.header.Clear()
	m.body = nil
}

// String returns the header section, its blank-line terminator and the
// body bytes.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString(m.header.String())
	b.Write(m.body)
	return b.String()
}

// Write writes the header section and body to w.
func (m *Message) Write(w io.Writer) error {
	if err := m.header.Write(w); err != nil {
		return err
	}
	if len(m.body) == 0 {
		return nil
	}
	_, err := w.Write(m.body)
	return err
}

// messageBody locates the blank-line boundary in raw and returns the
// view past it. The search runs over the whole message, not just the
// header section, so a message without header fields still finds its
// body. CRLF framing wins over bare LF when both occur.
func messageBody(raw []byte) []byte {
	if i := bytes.Index(raw, DoubleCrLf); i >= 0 {
		return raw[i+len(DoubleCrLf):]
	}
	if i := bytes.Index(raw, DoubleLf); i >= 0 {
		return raw[i+len(DoubleLf):]
	}
	return nil
}
