/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"bytes"
	"strconv"
	"strings"
)

// NewStatusLine returns the default status line, "HTTP/1.1 200 OK".
func NewStatusLine() *StatusLine {
	return &StatusLine{version: Version11, code: StatusOK}
}

// ParseStatusLine parses the first line of raw as a status line and
// returns it together with whatever input follows the line terminator.
// The line must match `HTTP/major.minor SP 3DIGIT SP reason-phrase`,
// terminated by CRLF or a bare LF. The reason phrase must be present
// but its text is not retained; serialization substitutes the
// canonical description for the code.
func ParseStatusLine(raw []byte) (*StatusLine, []byte, error) {
	if len(raw) < minStatusLineLength {
		return nil, nil, &LineError{what: "status line too short", line: string(raw)}
	}
	end := bytes.IndexByte(raw, '\n')
	if end < 0 {
		return nil, nil, &LineError{what: "status line not terminated", line: string(raw)}
	}
	rest := raw[end+1:]
	if end > 0 && raw[end-1] == '\r' {
		end--
	}
	line := string(raw[:end])

	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return nil, nil, &LineError{what: "malformed status line", line: line}
	}
	version, ok := parseVersion(line[:sp])
	if !ok {
		return nil, nil, &LineError{what: "malformed version in status line", line: line}
	}
	s := line[sp+1:]
	if len(s) < 5 || s[3] != ' ' {
		return nil, nil, &LineError{what: "malformed status code in", line: line}
	}
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, nil, &LineError{what: "malformed status code in", line: line}
		}
	}
	code, _ := strconv.Atoi(s[:3])
	return &StatusLine{version: version, code: code}, rest, nil
}

// Version returns the protocol version.
func (l *StatusLine) Version() Version { return l.version }

// SetVersion sets the protocol version.
func (l *StatusLine) SetVersion(v Version) { l.version = v }

// Code returns the status code.
func (l *StatusLine) Code() int { return l.code }

// SetCode sets the status code.
func (l *StatusLine) SetCode(code int) { l.code = code }

// String returns the wire form of the status line with the canonical
// description for the code and a CRLF terminator.
func (l *StatusLine) String() string {
	var b strings.Builder
	b.WriteString(l.version.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(l.code))
	b.WriteByte(' ')
	b.WriteString(StatusDescription(l.code))
	b.WriteString("\r\n")
	return b.String()
}
