/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package mime maps file extensions to media types for callers that
// populate a Content-Type header from a file name.
package mime

import "strings"

// DefaultType is returned for extensions the table does not know.
const DefaultType = "text/plain"

var typeByExtension = map[string]string{
	// text
	"html": "text/html",
	"htm":  "text/html",
	"js":   "text/javascript",
	"txt":  "text/plain",
	"css":  "text/css",
	"xml":  "text/xml",

	// image
	"bmp":  "image/bmp",
	"gif":  "image/gif",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"ico":  "image/x-icon",

	// application
	"json": "application/json",
	"bin":  "application/octet-stream",
}

// TypeByExtension returns the media type for the file extension ext.
// A leading dot is accepted and the lookup is case-insensitive.
// Unknown extensions map to DefaultType rather than failing.
func TypeByExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if t, ok := typeByExtension[ext]; ok {
		return t
	}
	return DefaultType
}
