/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

// AddFields parses a raw header block and appends the fields it finds,
// stopping at the header capacity.
//
// The parser is deliberately lenient: a block that never produces a
// well-formed field contributes nothing, a block that turns malformed
// halfway keeps the fields parsed up to that point. Per-field grammar
// errors are never surfaced to the caller; only the message's first
// line is parsed strictly.
//
// Values split across continuation lines beginning with whitespace
// (the obsolete RFC 2616 2.2 line folding) are reassembled with a
// single space joining each continuation.
func (h *Header) AddFields(data []byte) {
	i, n := 0, len(data)
	for i < n && isASCIISpace(data[i]) {
		i++
	}
	for h.Size() < h.Limit() && i < n {
		// field-name: up to the separating colon, never across
		// whitespace or control bytes
		start := i
		for i < n && data[i] != ':' && !isCTL(data[i]) && !isASCIISpace(data[i]) {
			i++
		}
		name := string(data[start:i])
		for i < n && isLWS(data[i]) {
			i++
		}
		if i >= n || data[i] != ':' {
			// malformed field: keep what was parsed, drop the rest
			return
		}
		i++
		for i < n && isLWS(data[i]) {
			i++
		}

		var value string
		end := false
		for {
			start = i
			for i < n && data[i] != '\r' && data[i] != '\n' && !isCTL(data[i]) {
				i++
			}
			chunk := string(trim(data[start:i]))
			if value == "" {
				value = chunk
			} else if chunk != "" {
				value += " " + chunk
			}
			term := 0
			for i < n && (data[i] == '\r' || data[i] == '\n') {
				i++
				term++
			}
			if term >= 3 {
				// blank line: end of the header section
				end = true
				break
			}
			if i < n && term > 0 && isLWS(data[i]) {
				// folded continuation line
				for i < n && isLWS(data[i]) {
					i++
				}
				continue
			}
			break
		}

		h.Add(name, value)
		if end {
			return
		}
	}
}
