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

package imageurl

import "errors"

var (
	// ErrInvalidSize is returned by ParseSize for a malformed "WxH" tag.
	ErrInvalidSize = errors.New("invalid size")
	// ErrNotVariant is returned by ParseVariant when no route matches.
	ErrNotVariant = errors.New("not a variant path")
	// ErrSizeLimit reports a dimension above Limits or outside the int range.
	ErrSizeLimit = errors.New("size exceeds limit")
)
