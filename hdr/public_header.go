/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"time"

	"golang.org/x/net/http/httpguts"
)

// New returns an empty Header accepting at most limit fields.
// A non-positive limit selects DefaultFieldLimit.
func New(limit int) *Header {
	if limit <= 0 {
		limit = DefaultFieldLimit
	}
	return &Header{limit: limit}
}

// Parse returns a Header populated from a raw header block, honoring
// limit. See AddFields for the parsing rules.
func Parse(data []byte, limit int) *Header {
	h := New(limit)
	h.AddFields(data)
	return h
}

// ParseTime parses a time header (such as the Date: header),
// trying each of the three formats allowed by HTTP/1.1:
// TimeFormat, time.RFC850, and time.ANSIC.
func ParseTime(text string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range timeFormats {
		t, err = time.Parse(layout, text)
		if err == nil {
			return t, err
		}
	}
	return t, err
}

// Now returns the current time formatted for a Date header value.
func Now() string {
	return time.Now().UTC().Format(TimeFormat)
}

// TrimString returns s without leading and trailing ASCII space.
func TrimString(s string) string {
	for len(s) > 0 && isASCIISpace(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && isASCIISpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// ValidFieldName reports whether name is a legal header field name
// (an RFC 7230 token). The lenient block parser accepts a wider set of
// names; strict callers check parsed fields with this before trusting
// them.
func ValidFieldName(name string) bool {
	return httpguts.ValidHeaderFieldName(name)
}

// ValidFieldValue reports whether value is a legal header field value.
func ValidFieldValue(value string) bool {
	return httpguts.ValidHeaderFieldValue(value)
}
