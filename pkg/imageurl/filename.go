// Copyright 2024 imgurl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package imageurl rewrites image URLs into resized variant URLs.
//
// A variant URL carries a tag between the file name and its extension:
//
//	/static/img/photo.jpeg  ->  /static/img/photo.320x240.jpeg
//
// The tag is either a dimension ("320x240") or a template name ("thumbnail").
// All functions work on plain strings with no I/O and are safe for concurrent use.
// The package does not decode, resize or fetch images.
package imageurl

import "strings"

// SplitMode selects where ParseFilename puts the last path separator.
type SplitMode int

const (
	// SplitAfterSeparator keeps the separator at the end of Path.
	SplitAfterSeparator SplitMode = iota
	// SplitAtSeparator keeps the separator at the front of Name.
	// Rewritten URLs are identical in both modes; only the parts differ.
	SplitAtSeparator
)

// String returns the flag-friendly name of the mode.
func (m SplitMode) String() string {
	switch m {
	case SplitAtSeparator:
		return "at-separator"
	default:
		return "after-separator"
	}
}

// ParsedPath is a URL split into directory, file name and extension.
// Path + Name + Extension always equals the parsed input.
type ParsedPath struct {
	Path      string // everything before the file name, "" if there is no "/"
	Name      string // file name without its extension
	Extension string // from the last "." of the file name, dot included; "" if none
}

// ParseFilename splits url using SplitAfterSeparator.
func ParseFilename(url string) ParsedPath {
	return SplitAfterSeparator.Parse(url)
}

// Parse splits url into a ParsedPath. Every input, including "", is accepted.
func (m SplitMode) Parse(url string) ParsedPath {
	cut := strings.LastIndex(url, "/")
	switch {
	case cut < 0:
		cut = 0
	case m == SplitAfterSeparator:
		cut++
	}

	segment := url[cut:]
	dot := strings.LastIndex(segment, ".")
	if dot < 0 {
		dot = len(segment)
	}

	return ParsedPath{
		Path:      url[:cut],
		Name:      segment[:dot],
		Extension: segment[dot:],
	}
}

// String reassembles the original input.
func (p ParsedPath) String() string {
	return p.Path + p.Name + p.Extension
}
