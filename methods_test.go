/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import "testing"

var methodTokens = []string{
	"GET", "POST", "PUT", "DELETE", "OPTIONS",
	"HEAD", "TRACE", "CONNECT", "PATCH",
}

func TestMethodRoundTrip(t *testing.T) {
	for _, token := range methodTokens {
		m := MethodFromString(token)
		if m == MethodInvalid {
			t.Errorf("MethodFromString(%q) = INVALID", token)
			continue
		}
		if got := m.String(); got != token {
			t.Errorf("Method(%q).String() = %q", token, got)
		}
	}
}

func TestMethodFromStringUnknown(t *testing.T) {
	for _, token := range []string{"", "get", "Get", "BREW", "GETS", " GET"} {
		if m := MethodFromString(token); m != MethodInvalid {
			t.Errorf("MethodFromString(%q) = %v, want INVALID", token, m)
		}
	}
}

func TestMethodStringOutOfRange(t *testing.T) {
	for _, m := range []Method{MethodInvalid, Method(-1), Method(99)} {
		if got := m.String(); got != "INVALID" {
			t.Errorf("Method(%d).String() = %q, want INVALID", int(m), got)
		}
	}
}
