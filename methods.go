/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

// A Method is one of the nine request methods the parser recognizes.
// Anything else maps to MethodInvalid; both directions of the string
// mapping are total and never fail.
type Method int

const (
	GET Method = iota
	POST
	PUT
	DELETE
	OPTIONS
	HEAD
	TRACE
	CONNECT
	PATCH
	MethodInvalid
)

var methodStrings = [...]string{
	"GET", "POST", "PUT", "DELETE", "OPTIONS",
	"HEAD", "TRACE", "CONNECT", "PATCH", "INVALID",
}

// String returns the method token. Out-of-range values yield "INVALID".
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodStrings)-1 {
		return methodStrings[len(methodStrings)-1]
	}
	return methodStrings[m]
}

// MethodFromString maps a method token to its Method. Unknown tokens
// map to MethodInvalid; the comparison is case-sensitive, as method
// tokens are case-sensitive on the wire.
func MethodFromString(s string) Method {
	for m := GET; m < MethodInvalid; m++ {
		if methodStrings[m] == s {
			return m
		}
	}
	return MethodInvalid
}
