/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hioa-cs/http/url"
)

// NewRequest returns an empty request with the default request line
// and the default header capacity.
func NewRequest() *Request {
	return &Request{
		line:    *NewRequestLine(),
		Message: newMessage(0),
	}
}

// ParseRequest parses a complete request message held in raw. The
// request line is parsed strictly; a malformed first line fails the
// whole parse. The header block after it is parsed leniently, keeping
// whatever fields precede the first defect, bounded by limit (a
// non-positive limit selects the default capacity). The body is
// whatever follows the blank-line boundary.
//
// Parsed fields and the body are views into raw; the caller must not
// mutate raw while the request is in use.
func ParseRequest(raw []byte, limit int) (*Request, error) {
	line, rest, err := ParseRequestLine(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parse request")
	}
	req := &Request{
		line:    *line,
		Message: newMessage(limit),
	}
	req.header.AddFields(rest)
	req.AddBody(messageBody(raw))
	return req, nil
}

// Method returns the request method.
func (r *Request) Method() Method { return r.line.Method() }

// SetMethod sets the request method.
func (r *Request) SetMethod(m Method) { r.line.SetMethod(m) }

// URI returns the request target.
func (r *Request) URI() *url.URL { return r.line.URI() }

// SetURI sets the request target.
func (r *Request) SetURI(u *url.URL) { r.line.SetURI(u) }

// Version returns the protocol version.
func (r *Request) Version() Version { return r.line.Version() }

// SetVersion sets the protocol version.
func (r *Request) SetVersion(v Version) { r.line.SetVersion(v) }

// QueryValue returns the value of the named query parameter of the
// request target, or the empty string when absent.
func (r *Request) QueryValue(name string) string {
	return r.line.URI().QueryValue(name)
}

// PostValue returns the value of the named field in an
// application/x-www-form-urlencoded request body. It is empty unless
// the method is POST and the body carries an exact `name=value` pair.
func (r *Request) PostValue(name string) string {
	if r.line.Method() != POST || name == "" || len(r.body) == 0 {
		return ""
	}
	for _, pair := range strings.Split(string(r.body), "&") {
		if key, value, ok := strings.Cut(pair, "="); ok && key == name {
			return value
		}
	}
	return ""
}

// Reset restores the request to its default-constructed state: the
// default request line, no header fields and no body.
func (r *Request) Reset() *Request {
	r.line = *NewRequestLine()
	r.Message.reset()
	return r
}

// String returns the wire form of the request.
func (r *Request) String() string {
	return r.line.String() + r.Message.String()
}
