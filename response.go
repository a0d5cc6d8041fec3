/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"github.com/pkg/errors"
)

// NewResponse returns an empty response with the default status line
// and the default header capacity.
func NewResponse() *Response {
	return &Response{
		line:    *NewStatusLine(),
		Message: newMessage(0),
	}
}

// ParseResponse parses a complete response message held in raw, with
// the same strict-first-line, lenient-header-block policy as
// ParseRequest. Parsed fields and the body are views into raw.
func ParseResponse(raw []byte, limit int) (*Response, error) {
	line, rest, err := ParseStatusLine(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parse response")
	}
	res := &Response{
		line:    *line,
		Message: newMessage(limit),
	}
	res.header.AddFields(rest)
	res.AddBody(messageBody(raw))
	return res, nil
}

// StatusCode returns the response status code.
func (r *Response) StatusCode() int { return r.line.Code() }

// SetStatusCode sets the response status code.
func (r *Response) SetStatusCode(code int) { r.line.SetCode(code) }

// Version returns the protocol version.
func (r *Response) Version() Version { return r.line.Version() }

// SetVersion sets the protocol version.
func (r *Response) SetVersion(v Version) { r.line.SetVersion(v) }

// Reset restores the response to its default-constructed state.
func (r *Response) Reset() *Response {
	r.line = *NewStatusLine()
	r.Message.reset()
	return r
}

// String returns the wire form of the response.
func (r *Response) String() string {
	return r.line.String() + r.Message.String()
}
