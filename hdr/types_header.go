/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"io"
	"strings"
	"time"
)

const (
	// DefaultFieldLimit is the number of fields a Header accepts when no
	// explicit limit is given. It bounds the memory a single message can
	// pin regardless of how many fields a peer sends.
	DefaultFieldLimit = 25

	//Headers
	Accept             = "Accept"
	AcceptCharset      = "Accept-Charset"
	AcceptEncoding     = "Accept-Encoding"
	AcceptLanguage     = "Accept-Language"
	AcceptRanges       = "Accept-Ranges"
	Age                = "Age"
	Allow              = "Allow"
	Authorization      = "Authorization"
	CacheControl       = "Cache-Control"
	Connection         = "Connection"
	ContentEncoding    = "Content-Encoding"
	ContentLanguage    = "Content-Language"
	ContentLength      = "Content-Length"
	ContentLocation    = "Content-Location"
	ContentMD5         = "Content-MD5"
	ContentRange       = "Content-Range"
	ContentType        = "Content-Type"
	CookieHeader       = "Cookie"
	Date               = "Date"
	ETag               = "ETag"
	Expect             = "Expect"
	Expires            = "Expires"
	From               = "From"
	Host               = "Host"
	HTTP2Settings      = "HTTP2-Settings"
	IfMatch            = "If-Match"
	IfModifiedSince    = "If-Modified-Since"
	IfNoneMatch        = "If-None-Match"
	IfRange            = "If-Range"
	IfUnmodifiedSince  = "If-Unmodified-Since"
	LastModified       = "Last-Modified"
	Location           = "Location"
	MaxForwards        = "Max-Forwards"
	Pragma             = "Pragma"
	ProxyAuthenticate  = "Proxy-Authenticate"
	ProxyAuthorization = "Proxy-Authorization"
	Range              = "Range"
	Referer            = "Referer"
	RetryAfter         = "Retry-After"
	ServerHeader       = "Server"
	SetCookieHeader    = "Set-Cookie"
	TE                 = "TE"
	Trailer            = "Trailer"
	TransferEncoding   = "Transfer-Encoding"
	UpgradeHeader      = "Upgrade"
	UserAgent          = "User-Agent"
	Vary               = "Vary"
	Via                = "Via"
	WWWAuthenticate    = "WWW-Authenticate"

	TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

var (
	timeFormats = []string{
		TimeFormat,
		time.RFC850,
		time.ANSIC,
	}

	headerNewlineToSpace = strings.NewReplacer("\n", " ", "\r", " ")
)

type (
	// A Field is a single header name/value pair. The name keeps the case
	// it was stored with; lookups compare names case-insensitively.
	Field struct {
		Name  string
		Value string
	}

	// A Header is an ordered set of fields with a fixed capacity.
	//
	// Serialization order is insertion order. Duplicate names are
	// permitted: Value returns the first match, Erase removes every
	// match. Once the capacity is reached Add rejects further fields
	// instead of growing; this is the message model's only backpressure
	// mechanism against unbounded header blocks.
	Header struct {
		fields []Field
		limit  int
	}

	// @comment : in "strings" package there is the same thing called stringWriterIface
	writeStringer interface {
		WriteString(string) (int, error)
	}

	// stringWriter implements WriteString on a Writer.
	stringWriter struct {
		w io.Writer
	}
)
