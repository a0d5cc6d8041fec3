/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"strings"

	"github.com/hioa-cs/http/url"
)

// NewRequestLine returns the default request line, "GET / HTTP/1.1".
func NewRequestLine() *RequestLine {
	return &RequestLine{
		method:  GET,
		uri:     &url.URL{Path: "/"},
		version: Version11,
	}
}

// ParseRequestLine parses the first line of raw as a request line and
// returns it together with whatever input follows the line terminator.
// The line must match `METHOD SP request-target SP HTTP/major.minor`,
// terminated by CRLF or a bare LF. Any violation yields a *LineError;
// a partial request line is never returned.
func ParseRequestLine(raw []byte) (*RequestLine, []byte, error) {
	if len(raw) < minRequestLineLength {
		return nil, nil, &LineError{what: "request line too short", line: string(raw)}
	}
	end := bytes.IndexByte(raw, '\n')
	if end < 0 {
		return nil, nil, &LineError{what: "request line not terminated", line: string(raw)}
	}
	rest := raw[end+1:]
	if end > 0 && raw[end-1] == '\r' {
		end--
	}
	line := string(raw[:end])

	s := strings.TrimLeft(line, " \t")
	sp := strings.IndexByte(s, ' ')
	if sp < 0 {
		return nil, nil, &LineError{what: "malformed request line", line: line}
	}
	method := MethodFromString(s[:sp])
	if method == MethodInvalid {
		return nil, nil, &LineError{what: "unknown method in request line", line: line}
	}
	s = s[sp+1:]
	sp = strings.IndexByte(s, ' ')
	if sp < 1 {
		return nil, nil, &LineError{what: "missing request target", line: line}
	}
	version, ok := parseVersion(s[sp+1:])
	if !ok {
		return nil, nil, &LineError{what: "malformed version in request line", line: line}
	}
	uri, err := url.Parse(s[:sp])
	if err != nil {
		return nil, nil, &LineError{what: "malformed request target in", line: line}
	}
	return &RequestLine{method: method, uri: uri, version: version}, rest, nil
}

// Method returns the request method.
func (l *RequestLine) Method() Method { return l.method }

// SetMethod sets the request method.
func (l *RequestLine) SetMethod(m Method) { l.method = m }

// URI returns the request target.
func (l *RequestLine) URI() *url.URL { return l.uri }

// SetURI sets the request target.
func (l *RequestLine) SetURI(u *url.URL) { l.uri = u }

// Version returns the protocol version.
func (l *RequestLine) Version() Version { return l.version }

// SetVersion sets the protocol version.
func (l *RequestLine) SetVersion(v Version) { l.version = v }

// String returns the wire form of the request line with a canonical
// CRLF terminator, regardless of the terminator seen on input.
func (l *RequestLine) String() string {
	var b strings.Builder
	b.WriteString(l.method.String())
	b.WriteByte(' ')
	b.WriteString(l.uri.String())
	b.WriteByte(' ')
	b.WriteString(l.version.String())
	b.WriteString("\r\n")
	return b.String()
}
