/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "testing"

func TestNewStatusLine(t *testing.T) {
	l := NewStatusLine()
	if l.Code() != StatusOK {
		t.Errorf("default code = %d, want 200", l.Code())
	}
	if !l.Version().Equal(Version11) {
		t.Errorf("default version = %v, want HTTP/1.1", l.Version())
	}
	if got := l.String(); got != "HTTP/1.1 200 OK\r\n" {
		t.Errorf("default String() = %q", got)
	}
}

func TestParseStatusLine(t *testing.T) {
	tests := []struct {
		in      string
		version Version
		code    int
		rest    string
	}{
		{"HTTP/1.1 200 OK\r\n", Version{1, 1}, 200, ""},
		{"HTTP/1.1 200 OK\n", Version{1, 1}, 200, ""},
		{"HTTP/1.0 404 Not Found\r\nServer: x\r\n\r\n", Version{1, 0}, 404, "Server: x\r\n\r\n"},
		{"HTTP/1.1 301 Moved Permanently\r\n", Version{1, 1}, 301, ""},
		{"HTTP/1.1 599 Some Made Up Reason\r\n", Version{1, 1}, 599, ""},
	}
	for i, tt := range tests {
		line, rest, err := ParseStatusLine([]byte(tt.in))
		if err != nil {
			t.Errorf("#%d: ParseStatusLine(%q): %v", i, tt.in, err)
			continue
		}
		if !line.Version().Equal(tt.version) {
			t.Errorf("#%d: version = %v, want %v", i, line.Version(), tt.version)
		}
		if line.Code() != tt.code {
			t.Errorf("#%d: code = %d, want %d", i, line.Code(), tt.code)
		}
		if string(rest) != tt.rest {
			t.Errorf("#%d: rest = %q, want %q", i, rest, tt.rest)
		}
	}
}

func TestParseStatusLineErrors(t *testing.T) {
	tests := []string{
		"",
		"HTTP/2.0 301\n",              // missing description
		"HTTP/1.1 200 OK",             // no line terminator
		"HTTP/1.1 20 Short Code\r\n",  // code is not three digits
		"HTTP/1.1 2000 Long Code\r\n", // four digits where the space belongs
		"HTTP/1.x 200 OK died\r\n",    // malformed version
		"200 OK HTTP/1.1 nope\r\n",    // fields out of order
	}
	for i, in := range tests {
		line, _, err := ParseStatusLine([]byte(in))
		if err == nil {
			t.Errorf("#%d: ParseStatusLine(%q) succeeded: %v", i, in, line)
			continue
		}
		if _, ok := err.(*LineError); !ok {
			t.Errorf("#%d: error type = %T, want *LineError", i, err)
		}
	}
}

func TestStatusLineSerializesCanonicalDescription(t *testing.T) {
	// The reason phrase on input is not retained; output substitutes
	// the canonical description for the code.
	line, _, err := ParseStatusLine([]byte("HTTP/1.1 404 Nope\r\n"))
	if err != nil {
		t.Fatalf("ParseStatusLine: %v", err)
	}
	if got, want := line.String(), "HTTP/1.1 404 Not Found\r\n"; got != want {
		t.Errorf("got: %q\nwant: %q", got, want)
	}
}
