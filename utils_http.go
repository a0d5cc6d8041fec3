/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package http

import (
	"net"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/net/idna"

	"github.com/hioa-cs/http/hdr"
)

// Host returns the host the request is directed at: the authority of
// the request target when present, otherwise the Host header field.
// The result is cleaned and converted to its punycode ASCII form.
func (r *Request) Host() string {
	host := r.line.URI().Host
	if host == "" {
		host = r.header.Value(hdr.Host)
	}
	return removeZone(cleanHost(host))
}

// Validate checks every header field against the RFC 7230 field-name
// and field-value grammar. The lenient block parser keeps whatever it
// could read; Validate is the strict gate for callers that must reject
// smuggled or corrupted fields before acting on them.
func (r *Request) Validate() error {
	return validateHeader(r.header)
}

// Validate checks every header field against the RFC 7230 grammar.
func (r *Response) Validate() error {
	return validateHeader(r.header)
}

func validateHeader(h *hdr.Header) error {
	for _, f := range h.Fields() {
		if !hdr.ValidFieldName(f.Name) {
			return errors.Errorf("invalid header field name %q", f.Name)
		}
		if !hdr.ValidFieldValue(f.Value) {
			return errors.Errorf("invalid header field value for %q", f.Name)
		}
	}
	return nil
}

// cleanHost strips anything following a space or slash and converts
// non-ASCII hostnames with idna.Lookup. A malformed host is truncated
// at the first offending character rather than rejected.
func cleanHost(in string) string {
	if i := strings.IndexAny(in, " /"); i != -1 {
		in = in[:i]
	}
	host, port, err := net.SplitHostPort(in)
	if err != nil { // input was just a host
		a, err := idnaASCII(in)
		if err != nil {
			return in // garbage in, garbage out
		}
		return a
	}
	a, err := idnaASCII(host)
	if err != nil {
		return in // garbage in, garbage out
	}
	return net.JoinHostPort(a, port)
}

func idnaASCII(v string) (string, error) {
	if isASCII(v) {
		return v, nil
	}
	return idna.Lookup.ToASCII(v)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// removeZone removes an IPv6 zone identifier from host,
// e.g. "[fe80::1%en0]:8080" to "[fe80::1]:8080".
func removeZone(host string) string {
	if !strings.HasPrefix(host, "[") {
		return host
	}
	i := strings.LastIndex(host, "]")
	if i < 0 {
		return host
	}
	j := strings.LastIndex(host[:i], "%")
	if j < 0 {
		return host
	}
	return host[:j] + host[i:]
}
