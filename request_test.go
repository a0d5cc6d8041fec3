/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/hioa-cs/http/hdr"
)

func TestNewRequestString(t *testing.T) {
	if got, want := NewRequest().String(), "GET / HTTP/1.1\r\n\r\n"; got != want {
		t.Errorf("got: %q\nwant: %q", got, want)
	}
}

func TestParseRequest(t *testing.T) {
	raw := []byte("GET https://example.com HTTP/1.1\r\nConnection: close\r\n\r\n")
	req, err := ParseRequest(raw, 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Method() != GET {
		t.Errorf("method = %v, want GET", req.Method())
	}
	if got := req.URI().String(); got != "https://example.com" {
		t.Errorf("target = %q", got)
	}
	if !req.Version().Equal(Version11) {
		t.Errorf("version = %v, want HTTP/1.1", req.Version())
	}
	if got := req.Header().Value(hdr.Connection); got != "close" {
		t.Errorf("Connection = %q, want \"close\"", got)
	}
	if len(req.Body()) != 0 {
		t.Errorf("unexpected body %q", req.Body())
	}
}

func TestParseRequestWithBody(t *testing.T) {
	raw := []byte("POST /submit HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/x-www-form-urlencoded\r\n\r\nname=rico&language=cpp")
	req, err := ParseRequest(raw, 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if got := string(req.Body()); got != "name=rico&language=cpp" {
		t.Errorf("body = %q", got)
	}
	if got := req.Header().Value(hdr.ContentLength); got != "22" {
		t.Errorf("Content-Length = %q, want \"22\"", got)
	}
}

func TestParseRequestErrors(t *testing.T) {
	for i, in := range []string{"", "GET / \n"} {
		_, err := ParseRequest([]byte(in), 0)
		if err == nil {
			t.Errorf("#%d: ParseRequest(%q) succeeded", i, in)
			continue
		}
		if _, ok := errors.Cause(err).(*LineError); !ok {
			t.Errorf("#%d: cause type = %T, want *LineError", i, errors.Cause(err))
		}
	}
}

func TestParseRequestHeaderLimit(t *testing.T) {
	raw := []byte("GET / HTTP/1.1\r\nA: 1\r\nB: 2\r\nC: 3\r\nD: 4\r\n\r\n")
	req, err := ParseRequest(raw, 2)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Header().Size() != 2 {
		t.Errorf("size = %d, want limit of 2", req.Header().Size())
	}
	if !req.Header().Has("A") || !req.Header().Has("B") {
		t.Errorf("fields within the limit were dropped: %q", req.Header().String())
	}
}

func TestRequestRoundTrip(t *testing.T) {
	raw := []byte("POST /submit?lang=go HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\npayload")
	req, err := ParseRequest(raw, 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	again, err := ParseRequest([]byte(req.String()), 0)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if req.Method() != again.Method() || !req.Version().Equal(again.Version()) {
		t.Errorf("first line changed across round trip")
	}
	if req.URI().String() != again.URI().String() {
		t.Errorf("target changed: %q vs %q", req.URI(), again.URI())
	}
	if string(req.Body()) != string(again.Body()) {
		t.Errorf("body changed: %q vs %q", req.Body(), again.Body())
	}
	for _, f := range req.Header().Fields() {
		if got := again.Header().Value(f.Name); got != f.Value {
			t.Errorf("header %q changed: %q vs %q", f.Name, f.Value, got)
		}
	}
}

func TestRequestQueryValue(t *testing.T) {
	req, err := ParseRequest([]byte("GET /search?q=unikernel&lang=en HTTP/1.1\r\n\r\n"), 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if got := req.QueryValue("q"); got != "unikernel" {
		t.Errorf("QueryValue(q) = %q", got)
	}
	if got := req.QueryValue("lang"); got != "en" {
		t.Errorf("QueryValue(lang) = %q", got)
	}
	if got := req.QueryValue("missing"); got != "" {
		t.Errorf("QueryValue(missing) = %q, want empty", got)
	}
}

func TestRequestPostValue(t *testing.T) {
	req, err := ParseRequest([]byte("POST / HTTP/1.1\r\n\r\nname=rico&language=cpp"), 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if got := req.PostValue("name"); got != "rico" {
		t.Errorf("PostValue(name) = %q, want \"rico\"", got)
	}
	if got := req.PostValue("language"); got != "cpp" {
		t.Errorf("PostValue(language) = %q, want \"cpp\"", got)
	}
	if got := req.PostValue("missing"); got != "" {
		t.Errorf("PostValue(missing) = %q, want empty", got)
	}
	if got := req.PostValue(""); got != "" {
		t.Errorf("PostValue(\"\") = %q, want empty", got)
	}
}

func TestRequestPostValueExactKey(t *testing.T) {
	// "lang" must not match the "language" key or a value substring.
	req, err := ParseRequest([]byte("POST / HTTP/1.1\r\n\r\nlanguage=lang&lang=go&flag"), 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if got := req.PostValue("lang"); got != "go" {
		t.Errorf("PostValue(lang) = %q, want \"go\"", got)
	}
	if got := req.PostValue("language"); got != "lang" {
		t.Errorf("PostValue(language) = %q, want \"lang\"", got)
	}
	// a pair without "=" yields nothing
	if got := req.PostValue("flag"); got != "" {
		t.Errorf("PostValue(flag) = %q, want empty", got)
	}
}

func TestRequestPostValueRequiresPost(t *testing.T) {
	req, err := ParseRequest([]byte("PUT / HTTP/1.1\r\n\r\nname=rico"), 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if got := req.PostValue("name"); got != "" {
		t.Errorf("PostValue on PUT = %q, want empty", got)
	}
}

func TestRequestReset(t *testing.T) {
	req, err := ParseRequest([]byte("POST /submit HTTP/1.1\r\nHost: example.com\r\n\r\npayload"), 0)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	req.Reset()
	if got, want := req.String(), NewRequest().String(); got != want {
		t.Errorf("reset request = %q, default = %q", got, want)
	}
	if req.Header().Size() != 0 || len(req.Body()) != 0 {
		t.Errorf("reset left state behind: %q", req.String())
	}
}

func TestRequestHost(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"GET https://example.com/x HTTP/1.1\r\n\r\n", "example.com"},
		{"GET /x HTTP/1.1\r\nHost: example.com:8080\r\n\r\n", "example.com:8080"},
		{"GET /x HTTP/1.1\r\n\r\n", ""},
	}
	for i, tt := range tests {
		req, err := ParseRequest([]byte(tt.raw), 0)
		if err != nil {
			t.Fatalf("#%d: ParseRequest: %v", i, err)
		}
		if got := req.Host(); got != tt.want {
			t.Errorf("#%d: Host() = %q, want %q", i, got, tt.want)
		}
	}
}

func TestRequestValidate(t *testing.T) {
	req := NewRequest()
	req.Header().Add(hdr.Host, "example.com")
	req.Header().Add(hdr.Accept, "*/*")
	if err := req.Validate(); err != nil {
		t.Errorf("valid header rejected: %v", err)
	}
	req.Header().Add("Bad Name", "x")
	if err := req.Validate(); err == nil {
		t.Errorf("field name with a space passed validation")
	}
}
