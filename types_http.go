/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"fmt"

	"github.com/hioa-cs/http/hdr"
	"github.com/hioa-cs/http/url"
)

const (
	// minRequestLineLength is the shortest well-formed request line,
	// "GET / HTTP/1.1" plus a bare LF.
	minRequestLineLength = 15

	// minStatusLineLength guards the status-line parse the same way;
	// "HTTP/1.1 200 OK" needs at least a version, a code and one
	// description byte.
	minStatusLineLength = 16

	HTTP1_1 = "HTTP/1.1"
	HTTP1_0 = "HTTP/1.0"
)

var (
	CrLf       = []byte("\r\n")
	Lf         = []byte("\n")
	DoubleCrLf = []byte("\r\n\r\n")
	DoubleLf   = []byte("\n\n")
)

type (
	// A LineError reports a message first line that could not be
	// parsed. The first line is load-bearing for routing, so unlike
	// header-block defects it is surfaced as an error; the offending
	// line rides along for diagnostics.
	LineError struct {
		what string
		line string
	}

	// A Message is the first-line-agnostic part of an HTTP message:
	// a bounded header set plus the message body. Request and Response
	// embed it and contribute their first line.
	//
	// The body is stored as a slice of whatever buffer the caller
	// handed to AddBody (for parsed messages, the original input).
	// Callers must not mutate that buffer while the message is alive.
	Message struct {
		header *hdr.Header
		body   []byte
	}

	// A RequestLine is the first line of an HTTP request:
	// method, request target and protocol version.
	RequestLine struct {
		method  Method
		uri     *url.URL
		version Version
	}

	// A StatusLine is the first line of an HTTP response:
	// protocol version and status code.
	StatusLine struct {
		version Version
		code    int
	}

	// A Request is a full HTTP request message.
	Request struct {
		line RequestLine
		Message
	}

	// A Response is a full HTTP response message.
	Response struct {
		line StatusLine
		Message
	}
)

func (e *LineError) Error() string {
	return fmt.Sprintf("http: %s %q", e.what, e.line)
}

// Line returns the offending first line.
func (e *LineError) Line() string {
	return e.line
}
