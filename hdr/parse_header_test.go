/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderBlock(t *testing.T) {
	raw := "Server: IncludeOS/Acorn v0.1\r\n" +
		"Allow: GET, HEAD\r\n" +
		"Connection: close\r\n\r\n"
	h := Parse([]byte(raw), 0)
	require.Equal(t, 3, h.Size())
	require.Equal(t, "IncludeOS/Acorn v0.1", h.Value("Server"))
	require.Equal(t, "GET, HEAD", h.Value("Allow"))
	require.Equal(t, "close", h.Value("Connection"))
	require.Equal(t, raw, h.String())
}

func TestParseHeaderBlockNonsense(t *testing.T) {
	h := Parse([]byte("[IncludeOS] A minimal, resource efficient unikernel for cloud services"), 0)
	require.True(t, h.IsEmpty())
}

func TestParseHeaderBlockEmpty(t *testing.T) {
	require.True(t, Parse(nil, 0).IsEmpty())
	require.True(t, Parse([]byte("   "), 0).IsEmpty())
}

func TestParseHeaderBlockMalformedTail(t *testing.T) {
	// the parse keeps the fields seen before the malformed line
	raw := "Host: example.com\r\n" +
		"this line has no colon and aborts the rest\r\n" +
		"Connection: close\r\n\r\n"
	h := Parse([]byte(raw), 0)
	require.Equal(t, 1, h.Size())
	require.Equal(t, "example.com", h.Value("Host"))
	require.False(t, h.Has("Connection"))
}

func TestParseHeaderBlockFolding(t *testing.T) {
	raw := "Accept: text/plain;q=0.2,\r\n" +
		"        text/html;q=0.9,\r\n" +
		"        */*;q=0.1\r\n"
	h := Parse([]byte(raw), 0)
	require.Equal(t, 1, h.Size())
	require.Equal(t, "text/plain;q=0.2, text/html;q=0.9, */*;q=0.1", h.Value("Accept"))
}

func TestParseHeaderBlockFoldingTab(t *testing.T) {
	raw := "X-Long: part one\r\n\tpart two\r\nHost: x\r\n\r\n"
	h := Parse([]byte(raw), 0)
	require.Equal(t, "part one part two", h.Value("X-Long"))
	require.Equal(t, "x", h.Value("Host"))
}

func TestParseHeaderBlockBareLF(t *testing.T) {
	raw := "Host: example.com\nConnection: close\n\n"
	h := Parse([]byte(raw), 0)
	require.Equal(t, "example.com", h.Value("Host"))
	require.Equal(t, "close", h.Value("Connection"))
}

func TestParseHeaderBlockLimit(t *testing.T) {
	raw := "A: 1\r\nB: 2\r\nC: 3\r\nD: 4\r\n\r\n"
	h := Parse([]byte(raw), 2)
	require.Equal(t, 2, h.Size())
	require.True(t, h.Has("A"))
	require.True(t, h.Has("B"))
	require.False(t, h.Has("C"))
}

func TestParseHeaderBlockStopsAtBlankLine(t *testing.T) {
	// add_field-shaped noise after the blank line must not be parsed
	raw := "Content-Type: text/plain\r\n\r\nkey: value in the body\r\n"
	h := Parse([]byte(raw), 0)
	require.Equal(t, 1, h.Size())
	require.False(t, h.Has("key"))
}

func TestParseHeaderBlockSkipsLeadingWhitespace(t *testing.T) {
	h := Parse([]byte("   \r\nHost: example.com\r\n\r\n"), 0)
	require.Equal(t, "example.com", h.Value("Host"))
}

func TestParseHeaderValueWithColon(t *testing.T) {
	h := Parse([]byte("Host: includeos.server:8080\r\n\r\n"), 0)
	require.Equal(t, "includeos.server:8080", h.Value("Host"))
}
