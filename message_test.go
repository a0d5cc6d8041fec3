/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"testing"

	"github.com/hioa-cs/http/hdr"
)

func TestMessageAddBodySetsContentLength(t *testing.T) {
	m := newMessage(0)
	m.AddBody([]byte("hello there"))
	if got := m.header.Value(hdr.ContentLength); got != "11" {
		t.Errorf("Content-Length = %q, want \"11\"", got)
	}
	if got := string(m.Body()); got != "hello there" {
		t.Errorf("Body = %q", got)
	}
}

func TestMessageAddBodyEmptyIsNoOp(t *testing.T) {
	m := newMessage(0)
	m.AddBody(nil)
	m.AddBody([]byte{})
	if m.header.Has(hdr.ContentLength) {
		t.Errorf("empty AddBody set Content-Length")
	}
	if len(m.Body()) != 0 {
		t.Errorf("empty AddBody set a body: %q", m.Body())
	}
}

func TestMessageAppendBody(t *testing.T) {
	m := newMessage(0)
	m.AddBody([]byte("name=rico"))
	m.AppendBody([]byte("&language=cpp"))
	if got := string(m.Body()); got != "name=rico&language=cpp" {
		t.Errorf("Body = %q", got)
	}
	if got := m.header.Value(hdr.ContentLength); got != "22" {
		t.Errorf("Content-Length = %q, want \"22\"", got)
	}
}

func TestMessageAppendBodyDoesNotMutateOriginal(t *testing.T) {
	buf := []byte("abcdef")
	m := newMessage(0)
	m.AddBody(buf[:3])
	m.AppendBody([]byte("XYZ"))
	if string(buf) != "abcdef" {
		t.Errorf("AppendBody wrote into the borrowed buffer: %q", buf)
	}
	if got := string(m.Body()); got != "abcXYZ" {
		t.Errorf("Body = %q", got)
	}
}

func TestMessageClearBody(t *testing.T) {
	m := newMessage(0)
	m.AddBody([]byte("payload"))
	m.ClearBody()
	if len(m.Body()) != 0 {
		t.Errorf("body survived ClearBody: %q", m.Body())
	}
	// the field is removed entirely, not set to "0"
	if m.header.Has(hdr.ContentLength) {
		t.Errorf("Content-Length survived ClearBody: %q", m.header.Value(hdr.ContentLength))
	}
}

func TestMessageString(t *testing.T) {
	m := newMessage(0)
	if got := m.String(); got != "\r\n" {
		t.Errorf("empty message = %q, want blank line only", got)
	}
	m.header.Add(hdr.ContentType, "text/plain")
	m.AddBody([]byte("hi"))
	want := "Content-Type: text/plain\r\nContent-Length: 2\r\n\r\nhi"
	if got := m.String(); got != want {
		t.Errorf("got: %q\nwant: %q", got, want)
	}
}

func TestMessageWrite(t *testing.T) {
	m := newMessage(0)
	m.header.Add(hdr.Host, "example.com")
	m.AddBody([]byte("x"))
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != m.String() {
		t.Errorf("Write = %q, String = %q", buf.String(), m.String())
	}
}

func TestMessageBodyBoundary(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"GET / HTTP/1.1\r\nHost: a\r\n\r\nbody bytes", "body bytes"},
		{"GET / HTTP/1.1\nHost: a\n\nbody bytes", "body bytes"},
		{"POST / HTTP/1.1\r\n\r\nname=rico&language=cpp", "name=rico&language=cpp"},
		{"GET / HTTP/1.1\r\nHost: a\r\n\r\n", ""},
		{"GET / HTTP/1.1\r\nHost: a\r\n", ""},
		{"no boundary here", ""},
	}
	for i, tt := range tests {
		if got := string(messageBody([]byte(tt.raw))); got != tt.want {
			t.Errorf("#%d:\n got: %q\nwant: %q", i, got, tt.want)
		}
	}
}
