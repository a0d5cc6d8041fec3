/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"strconv"
	"strings"
)

// A Version is an HTTP protocol version as a major.minor pair.
// The zero value is not meaningful; use NewVersion or the Version11
// default carried by first lines.
type Version struct {
	Major uint
	Minor uint
}

// Version11 is the default protocol version of every first line.
var Version11 = Version{Major: 1, Minor: 1}

// NewVersion returns the version major.minor.
func NewVersion(major, minor uint) Version {
	return Version{Major: major, Minor: minor}
}

// String returns the wire form, e.g. "HTTP/1.1".
func (v Version) String() string {
	return "HTTP/" + strconv.FormatUint(uint64(v.Major), 10) + "." + strconv.FormatUint(uint64(v.Minor), 10)
}

// Equal reports whether v and other are the same version.
func (v Version) Equal(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}

// Less orders versions lexicographically: major first, minor only as
// the tie-breaker. HTTP/2.0 sorts after HTTP/1.5.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// AtLeast reports whether v is major.minor or newer. It mirrors the
// ProtoAtLeast helpers of mainstream HTTP stacks.
func (v Version) AtLeast(major, minor uint) bool {
	return v.Major > major ||
		v.Major == major && v.Minor >= minor
}

// parseVersion parses the wire form "HTTP/major.minor". Both numbers
// must be decimal; anything else is rejected.
func parseVersion(s string) (Version, bool) {
	if !strings.HasPrefix(s, "HTTP/") {
		return Version{}, false
	}
	s = s[len("HTTP/"):]
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return Version{}, false
	}
	major, err := strconv.ParseUint(s[:dot], 10, 16)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(s[dot+1:], 10, 16)
	if err != nil {
		return Version{}, false
	}
	return Version{Major: uint(major), Minor: uint(minor)}, true
}
